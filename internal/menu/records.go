package menu

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"loanerInventory/internal/logger"
	"loanerInventory/models"
	"loanerInventory/repository"
)

// searchChoices maps the search menu index to the field it matches on.
var searchChoices = map[string]repository.Field{
	"1": repository.FieldTechnician,
	"2": repository.FieldUser,
	"3": repository.FieldSerial,
	"4": repository.FieldDate,
	"5": repository.FieldBrand,
	"6": repository.FieldIdentification,
}

var fieldLabels = map[repository.Field]string{
	repository.FieldTechnician:     "technician",
	repository.FieldUser:           "user",
	repository.FieldSerial:         "DOE",
	repository.FieldDate:           "date",
	repository.FieldBrand:          "computer type",
	repository.FieldIdentification: "computer's name",
}

// createRecord collects a new loaner from the user and stores it as Open,
// stamped with today's date.
func (m *Menu) createRecord(ctx context.Context) error {
	m.println()
	m.println("--- Create New Record ---")

	var rec models.LoanerRecord
	steps := []struct {
		label string
		dst   *string
	}{
		{"Enter technician's OUN: ", &rec.Technician},
		{"Enter user's OUN: ", &rec.User},
		{"PC or Mac? ", &rec.Brand},
		{"Enter DOE: ", &rec.Serial},
		{"Enter computer's name: ", &rec.Identification},
	}
	for _, s := range steps {
		v, err := m.prompt(s.label)
		if err != nil {
			return err
		}
		*s.dst = v
	}
	rec.Date = m.now().Format(models.DateLayout)

	created, err := m.repo.Create(ctx, &rec)
	if err != nil {
		return err
	}
	logger.WithOperation("create").Info("record created", "id", created.ID)
	m.printf("Record %d added successfully.\n\n", created.ID)
	return nil
}

// searchRecords runs a single-field substring search, prints the matches and
// optionally hands one id to the update-or-close flow.
func (m *Menu) searchRecords(ctx context.Context) error {
	m.println()
	m.println("--- Search Records ---")
	m.println("Search by: 1) Technician  2) User  3) DOE")
	m.println("           4) Date        5) Computer Type 6) Computer's Name")

	choice, err := m.prompt("Enter your choice (1-6): ")
	if err != nil {
		return err
	}
	field, ok := searchChoices[choice]
	if !ok {
		m.println("Invalid option.")
		m.println()
		return nil
	}

	fragment, err := m.prompt(fmt.Sprintf("Enter value for %s: ", fieldLabels[field]))
	if err != nil {
		return err
	}

	records, err := m.repo.Search(ctx, field, fragment)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		m.println("No matching records found.")
		m.println()
		return nil
	}
	for i := range records {
		m.printRecord(&records[i])
	}

	answer, err := m.prompt("Would you like to update or close a record? (y/n): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		m.println()
		return nil
	}

	raw, err := m.prompt("Enter the ID of the record to update/close: ")
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		m.printf("Invalid ID %q.\n\n", raw)
		return nil
	}
	return m.updateOrClose(ctx, id)
}

// updateOrClose offers the three follow-up actions for one record id. Exactly
// one of update, complete or cancel runs.
func (m *Menu) updateOrClose(ctx context.Context, id int64) error {
	m.println()
	m.println("What would you like to do?")
	m.println("1) Update Record")
	m.println("2) Mark as Complete")
	m.println("3) Cancel")

	choice, err := m.prompt("Enter choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		name, err := m.prompt("Enter field to update (technician/user/date/brand/serial/identification): ")
		if err != nil {
			return err
		}
		field, err := repository.ParseField(name)
		if err != nil {
			m.println("Invalid field.")
			m.println()
			return nil
		}
		value, err := m.prompt(fmt.Sprintf("Enter new value for %s: ", field))
		if err != nil {
			return err
		}
		if err := m.repo.UpdateField(ctx, id, field, value); err != nil {
			return m.writeOutcome(id, err)
		}
		logger.WithOperation("update").Info("record updated", "id", id, "field", field)
		m.println("Record updated.")
		return m.showRecord(ctx, id)
	case "2":
		if err := m.repo.MarkComplete(ctx, id); err != nil {
			return m.writeOutcome(id, err)
		}
		logger.WithOperation("complete").Info("record completed", "id", id)
		m.println("Record marked as complete.")
		return m.showRecord(ctx, id)
	default:
		m.println("Cancelled.")
		m.println()
	}
	return nil
}

// writeOutcome reports a missing id to the user and returns any other error
// to the main loop.
func (m *Menu) writeOutcome(id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		m.printf("No record with ID %d.\n\n", id)
		return nil
	}
	return err
}

// showRecord prints the stored state of a record after a write.
func (m *Menu) showRecord(ctx context.Context, id int64) error {
	rec, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	m.printRecord(rec)
	m.println()
	return nil
}

func (m *Menu) printRecord(r *models.LoanerRecord) {
	m.println()
	m.printf("ID: %d\n", r.ID)
	m.printf("Technician: %s\n", r.Technician)
	m.printf("User: %s\n", r.User)
	m.printf("Date: %s\n", r.Date)
	m.printf("Brand: %s\n", r.Brand)
	m.printf("Serial: %s\n", r.Serial)
	m.printf("Identification #: %s\n", r.Identification)
	m.printf("Status: %s\n", r.Status)
	m.println("----------------------")
}
