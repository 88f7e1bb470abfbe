// Package menu implements the interactive terminal dialogue: the main menu
// loop and the create, search and update-or-close flows it dispatches to.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"loanerInventory/internal/logger"
	"loanerInventory/repository"
)

// Menu reads choices line by line from its input and writes the dialogue to
// its output. It holds no record data itself.
type Menu struct {
	repo repository.LoanerRepositoryI
	in   *bufio.Scanner
	out  io.Writer
	now  func() time.Time
}

// Option customizes a Menu.
type Option func(*Menu)

// WithClock overrides the clock used to stamp checkout dates.
func WithClock(now func() time.Time) Option {
	return func(m *Menu) { m.now = now }
}

// New builds a Menu around the given repository and terminal streams.
func New(repo repository.LoanerRepositoryI, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		repo: repo,
		in:   bufio.NewScanner(in),
		out:  out,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the main menu until the user exits or input ends. Failures of a
// single operation are reported and the loop carries on; only a broken input
// stream is returned.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.println("Welcome to Computer Loaner Database")
		m.println("1) Create New Record")
		m.println("2) Search/View/Edit Records")
		m.println("3) Exit")

		choice, err := m.prompt("Enter your choice (1-3): ")
		if err != nil {
			return m.endOfInput(err)
		}

		var opErr error
		switch choice {
		case "1":
			opErr = m.createRecord(ctx)
		case "2":
			opErr = m.searchRecords(ctx)
		case "3":
			m.println("Exiting program. Goodbye!")
			return nil
		default:
			m.println("Invalid choice, try again.")
			m.println()
			continue
		}

		if opErr == nil {
			continue
		}
		if errors.Is(opErr, io.EOF) {
			return m.endOfInput(opErr)
		}
		m.printf("Error: %v\n\n", opErr)
		logger.ErrorContext(ctx, "operation failed", "choice", choice, "error", opErr)
	}
}

// endOfInput turns EOF into a clean exit and passes real read errors up.
func (m *Menu) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		m.println()
		m.println("Exiting program. Goodbye!")
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

// prompt writes label and returns the next input line with surrounding
// whitespace trimmed. It returns io.EOF once input is exhausted.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) println(a ...any) {
	fmt.Fprintln(m.out, a...)
}

func (m *Menu) printf(format string, a ...any) {
	fmt.Fprintf(m.out, format, a...)
}
