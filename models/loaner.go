package models

// LoanerStatus represents where a loaner record is in its lifecycle.
type LoanerStatus string

const (
	StatusOpen     LoanerStatus = "Open"
	StatusComplete LoanerStatus = "Complete"
)

// LoanerRecord is one tracked checkout of a loaner device.
// It maps to the `computers` table in SQLite.
type LoanerRecord struct {
	ID             int64        `db:"id" json:"id"`
	Technician     string       `db:"technician" json:"technician"`
	User           string       `db:"user" json:"user"`
	Date           string       `db:"date" json:"date"` // MM-DD-YYYY
	Brand          string       `db:"brand" json:"brand"`
	Serial         string       `db:"serial" json:"serial"` // DOE number
	Identification string       `db:"identification" json:"identification"`
	Status         LoanerStatus `db:"status" json:"status"`
}

// DateLayout is the checkout date format, MM-DD-YYYY.
const DateLayout = "01-02-2006"
