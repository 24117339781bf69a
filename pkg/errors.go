package arrivalTool

import (
	"errors"
	"fmt"
)

var (
	// ErrInputMismatch marks inputs that disagree on hours, levels or shape
	ErrInputMismatch = errors.New("input mismatch")

	// ErrInvalidDistribution marks values that cannot form a distribution,
	// such as negative proportions or decreasing cumulative counts
	ErrInvalidDistribution = errors.New("invalid distribution")

	// ErrDivisionByZero marks a ratio whose denominator is zero
	ErrDivisionByZero = errors.New("division by zero")
)

// DistributionError identifies the hour and column that broke an invariant.
// Hour is -1 when the failure is not tied to a single hour.
type DistributionError struct {
	Kind   error  // one of the Err sentinels
	Hour   int    // offending hour, or -1
	Column string // offending column, or ""
	Msg    string // detail
}

// Error function formats the kind, location and detail of the failure
func (e *DistributionError) Error() string {

	if e == nil {
		return ""
	}

	// locate failure
	loc := ""
	switch {
	case e.Hour >= 0 && e.Column != "":
		loc = fmt.Sprintf(" (hour %d, column %s)", e.Hour, e.Column)
	case e.Hour >= 0:
		loc = fmt.Sprintf(" (hour %d)", e.Hour)
	case e.Column != "":
		loc = fmt.Sprintf(" (column %s)", e.Column)
	}

	if e.Msg == "" {
		return e.Kind.Error() + loc
	}

	return fmt.Sprintf("%s%s: %s", e.Kind.Error(), loc, e.Msg)
}

// Unwrap function exposes the sentinel kind to errors.Is
func (e *DistributionError) Unwrap() error {

	return e.Kind
}

// mismatchf builds an ErrInputMismatch error
func mismatchf(
	hour int,
	column, format string,
	args ...any) error {

	return &DistributionError{Kind: ErrInputMismatch, Hour: hour, Column: column, Msg: fmt.Sprintf(format, args...)}
}

// invalidf builds an ErrInvalidDistribution error
func invalidf(
	hour int,
	column, format string,
	args ...any) error {

	return &DistributionError{Kind: ErrInvalidDistribution, Hour: hour, Column: column, Msg: fmt.Sprintf(format, args...)}
}

// zeroDivf builds an ErrDivisionByZero error
func zeroDivf(
	hour int,
	column, format string,
	args ...any) error {

	return &DistributionError{Kind: ErrDivisionByZero, Hour: hour, Column: column, Msg: fmt.Sprintf(format, args...)}
}
