package repository

import (
	"context"

	"loanerInventory/models"
)

// LoanerRepositoryI defines operations on LoanerRecord entities.
type LoanerRepositoryI interface {
	Create(ctx context.Context, rec *models.LoanerRecord) (*models.LoanerRecord, error)
	GetByID(ctx context.Context, id int64) (*models.LoanerRecord, error)
	Search(ctx context.Context, field Field, fragment string) ([]models.LoanerRecord, error)
	UpdateField(ctx context.Context, id int64, field Field, value string) error
	MarkComplete(ctx context.Context, id int64) error
}

var _ LoanerRepositoryI = (*LoanerRepository)(nil)
