// Package errorhandling is chapter 7: a custom error type, opening or
// creating a file, and propagating I/O errors up the call chain.
package errorhandling

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("Division by zero")

// CLIError is the error type the chapter returns to its caller. It carries
// a human-readable cause and, when it was converted from another error,
// that error for errors.Is and errors.As.
type CLIError struct {
	Cause string
	Err   error
}

func (e *CLIError) Error() string {
	return "CLI Error: " + e.Cause
}

// Unwrap exposes the converted error, if any.
func (e *CLIError) Unwrap() error { return e.Err }

// NewCLIError builds a CLIError from a literal message.
func NewCLIError(cause string) *CLIError {
	return &CLIError{Cause: cause}
}

// FromIO converts err into a *CLIError keeping err as the cause. A nil err
// converts to nil, and an error that already is a *CLIError is returned
// unchanged.
func FromIO(err error) error {
	if err == nil {
		return nil
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}
	return &CLIError{Cause: err.Error(), Err: err}
}

// Divide returns a / b, or ErrDivisionByZero.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// OptionalValue is the comma-ok view of a possibly nil pointer.
func OptionalValue(x *int) (int, bool) {
	if x == nil {
		return 0, false
	}
	return *x, true
}

func describe(err error) string {
	return fmt.Sprintf("%v (%T)", err, err)
}
