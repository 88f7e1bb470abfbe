package menu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loanerInventory/internal/testutil"
	"loanerInventory/models"
	"loanerInventory/repository"
)

func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}

func newTestRepo(t *testing.T) *repository.LoanerRepository {
	t.Helper()
	return repository.NewLoanerRepository(testutil.OpenInMemoryDB(t))
}

func run(t *testing.T, repo repository.LoanerRepositoryI, input string) string {
	t.Helper()
	var out bytes.Buffer
	m := New(repo, strings.NewReader(input), &out, WithClock(testutil.FixedClock(2026, 10, 14)))
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func seedT1(t *testing.T, repo *repository.LoanerRepository) *models.LoanerRecord {
	t.Helper()
	rec, err := repo.Create(context.Background(), &models.LoanerRecord{
		Technician: "T1", User: "U1", Date: "10-14-2026", Brand: "PC", Serial: "D100", Identification: "Laptop-5",
	})
	require.NoError(t, err)
	return rec
}

func TestRun_CreateRecord(t *testing.T) {
	repo := newTestRepo(t)

	out := run(t, repo, lines("1", "T1", "U1", "PC", "D100", "Laptop-5", "3"))
	assert.Contains(t, out, "Record 1 added successfully.")
	assert.Contains(t, out, "Exiting program. Goodbye!")

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.LoanerRecord{
		ID: 1, Technician: "T1", User: "U1", Date: "10-14-2026", Brand: "PC", Serial: "D100", Identification: "Laptop-5", Status: models.StatusOpen,
	}, *got)
}

func TestRun_SearchShowsMatches(t *testing.T) {
	repo := newTestRepo(t)
	seedT1(t, repo)
	_, err := repo.Create(context.Background(), &models.LoanerRecord{Technician: "T2", User: "U2", Date: "10-13-2026", Brand: "Mac", Serial: "D200"})
	require.NoError(t, err)

	out := run(t, repo, lines("2", "1", "T1", "n", "3"))
	assert.Contains(t, out, "ID: 1\nTechnician: T1\nUser: U1\nDate: 10-14-2026\nBrand: PC\nSerial: D100\nIdentification #: Laptop-5\nStatus: Open\n")
	assert.NotContains(t, out, "Technician: T2")
}

func TestRun_SearchNoResults(t *testing.T) {
	repo := newTestRepo(t)
	seedT1(t, repo)

	out := run(t, repo, lines("2", "2", "ZZZ", "3"))
	assert.Contains(t, out, "No matching records found.")
	assert.NotContains(t, out, "Error:")
}

func TestRun_SearchInvalidOption(t *testing.T) {
	repo := newTestRepo(t)

	out := run(t, repo, lines("2", "7", "3"))
	assert.Contains(t, out, "Invalid option.")
	assert.NotContains(t, out, "Enter value for")
}

func TestRun_UpdateBrand(t *testing.T) {
	repo := newTestRepo(t)
	rec := seedT1(t, repo)

	out := run(t, repo, lines("2", "1", "T1", "y", "1", "1", "brand", "Mac", "2", "1", "T1", "n", "3"))
	assert.Contains(t, out, "Record updated.")
	assert.Contains(t, out, "Brand: Mac")

	got, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	want := *rec
	want.Brand = "Mac"
	assert.Equal(t, want, *got)
}

func TestRun_MarkCompleteTwice(t *testing.T) {
	repo := newTestRepo(t)
	rec := seedT1(t, repo)

	for i := 0; i < 2; i++ {
		out := run(t, repo, lines("2", "5", "PC", "y", "1", "2", "3"))
		assert.Contains(t, out, "Record marked as complete.")
		assert.Contains(t, out, "Status: Complete")

		got, err := repo.GetByID(context.Background(), rec.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusComplete, got.Status)
		assert.Equal(t, rec.Brand, got.Brand)
	}
}

func TestRun_UpdateInvalidField(t *testing.T) {
	repo := newTestRepo(t)
	rec := seedT1(t, repo)

	out := run(t, repo, lines("2", "1", "T1", "y", "1", "1", "password", "3"))
	assert.Contains(t, out, "Invalid field.")
	assert.NotContains(t, out, "Enter new value")

	got, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, *rec, *got)
}

func TestRun_MissingIDReportedDistinctly(t *testing.T) {
	repo := newTestRepo(t)
	seedT1(t, repo)

	out := run(t, repo, lines("2", "1", "T1", "y", "99", "2", "3"))
	assert.Contains(t, out, "No record with ID 99.")
	assert.NotContains(t, out, "Record marked as complete.")
}

func TestRun_NonNumericIDAndCancel(t *testing.T) {
	repo := newTestRepo(t)
	rec := seedT1(t, repo)

	out := run(t, repo, lines("2", "1", "T1", "y", "abc", "2", "1", "T1", "y", "1", "3", "3"))
	assert.Contains(t, out, `Invalid ID "abc".`)
	assert.Contains(t, out, "Cancelled.")

	got, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, *rec, *got)
}

func TestRun_InvalidMainChoice(t *testing.T) {
	out := run(t, newTestRepo(t), lines("9", "3"))
	assert.Contains(t, out, "Invalid choice, try again.")
	assert.Equal(t, 2, strings.Count(out, "Welcome to Computer Loaner Database"))
}

func TestRun_EOFEndsSession(t *testing.T) {
	repo := newTestRepo(t)

	out := run(t, repo, "1\nT1\n")
	assert.Contains(t, out, "Exiting program. Goodbye!")

	recs, err := repo.Search(context.Background(), repository.FieldTechnician, "")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRun_ReadErrorIsReturned(t *testing.T) {
	var out bytes.Buffer
	m := New(newTestRepo(t), iotest.ErrReader(errors.New("tty gone")), &out)
	err := m.Run(context.Background())
	assert.ErrorContains(t, err, "tty gone")
}

type faultyRepo struct {
	repository.LoanerRepositoryI
	err error
}

func (f faultyRepo) Create(context.Context, *models.LoanerRecord) (*models.LoanerRecord, error) {
	return nil, f.err
}

func (f faultyRepo) Search(context.Context, repository.Field, string) ([]models.LoanerRecord, error) {
	return nil, f.err
}

func TestRun_StorageFaultKeepsSessionAlive(t *testing.T) {
	repo := faultyRepo{err: errors.New("disk I/O error")}

	out := run(t, repo, lines("1", "T1", "U1", "PC", "D100", "Laptop-5", "2", "1", "T1", "3"))
	assert.Equal(t, 2, strings.Count(out, "Error: disk I/O error"))
	assert.Contains(t, out, "Exiting program. Goodbye!")
}
