package domain

import (
	"fmt"
	"regexp"
)

// Domain identifier primitives. Each enforces validity at parse time so
// malformed identifiers are rejected before any upstream call is issued.

// prisonerNumberPattern matches the NOMIS offender number format, e.g. "A1234BC".
var prisonerNumberPattern = regexp.MustCompile(`^[A-Z][0-9]{4}[A-Z]{2}$`)

// prisonIDPattern matches agency identifiers such as "MDI" or "LEI".
var prisonIDPattern = regexp.MustCompile(`^[A-Z0-9]{2,6}$`)

// PrisonerNumber identifies one person in custody across every upstream API.
type PrisonerNumber string

// ParsePrisonerNumber validates and returns a PrisonerNumber.
// Returns an error if the value does not match the offender number format.
func ParsePrisonerNumber(s string) (PrisonerNumber, error) {
	if !prisonerNumberPattern.MatchString(s) {
		return "", fmt.Errorf("invalid prisoner number: %q", s)
	}
	return PrisonerNumber(s), nil
}

// String returns the string representation of the prisoner number.
func (p PrisonerNumber) String() string {
	return string(p)
}

// IsNil returns true if the prisoner number is empty.
func (p PrisonerNumber) IsNil() bool {
	return p == ""
}

// PrisonID identifies one establishment in the prison register.
type PrisonID string

// ParsePrisonID validates and returns a PrisonID.
func ParsePrisonID(s string) (PrisonID, error) {
	if !prisonIDPattern.MatchString(s) {
		return "", fmt.Errorf("invalid prison id: %q", s)
	}
	return PrisonID(s), nil
}

// String returns the string representation of the prison id.
func (p PrisonID) String() string {
	return string(p)
}

// IsNil returns true if the prison id is empty.
func (p PrisonID) IsNil() bool {
	return p == ""
}
