package repository

import (
	"fmt"
	"strings"
)

// Field names one column of a loaner record that can be searched or rewritten.
// Status is not a Field; it only changes through MarkComplete.
type Field string

const (
	FieldTechnician     Field = "technician"
	FieldUser           Field = "user"
	FieldDate           Field = "date"
	FieldBrand          Field = "brand"
	FieldSerial         Field = "serial"
	FieldIdentification Field = "identification"
)

// Fields lists every searchable and updatable field in display order.
var Fields = []Field{FieldTechnician, FieldUser, FieldDate, FieldBrand, FieldSerial, FieldIdentification}

const recordColumns = `id, technician, user, date, brand, serial, COALESCE(identification, '') AS identification, COALESCE(status, 'Open') AS status`

// searchQueries and updateQueries are the only SQL built from a field. The
// keys are closed and the column names are constants, never caller text.
var (
	searchQueries = map[Field]string{}
	updateQueries = map[Field]string{}
)

func init() {
	for _, f := range Fields {
		col := string(f)
		searchQueries[f] = fmt.Sprintf(`SELECT %s FROM computers WHERE instr(%s, ?) > 0 ORDER BY id`, recordColumns, col)
		updateQueries[f] = fmt.Sprintf(`UPDATE computers SET %s = ? WHERE id = ?`, col)
	}
}

// ParseField resolves a field name as typed by a user. Matching is exact after
// trimming surrounding whitespace.
func ParseField(name string) (Field, error) {
	f := Field(strings.TrimSpace(name))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidField, name)
	}
	return f, nil
}

// Valid reports whether f belongs to the field enumeration.
func (f Field) Valid() bool {
	_, ok := updateQueries[f]
	return ok
}
