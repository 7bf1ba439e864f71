package nanoflow

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound is returned when a named input column does not exist.
	ErrColumnNotFound = errors.New("column not found")

	// ErrColumnExists is returned when an output column name is already taken.
	ErrColumnExists = errors.New("column already exists")

	// ErrMaskNotFound is returned when a named selection mask does not exist.
	ErrMaskNotFound = errors.New("selection mask not found")

	// ErrMaskExists is returned when a selection mask name is already taken.
	ErrMaskExists = errors.New("selection mask already exists")
)

// ErrColumnType indicates that a column holds a different element type
// than the caller requested.
type ErrColumnType struct {
	Column   string
	Expected string
	Actual   string
}

func (e *ErrColumnType) Error() string {
	return fmt.Sprintf("column %q: type mismatch: expected %s, got %s", e.Column, e.Expected, e.Actual)
}

// ErrLengthMismatch indicates that column data does not match the frame's
// event count.
type ErrLengthMismatch struct {
	Column   string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("column %q: length mismatch: frame has %d events, got %d values", e.Column, e.Expected, e.Actual)
}
