package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no descriptor has the requested id.
	ErrNotFound = errors.New("catalog: algorithm not found")
	// ErrDuplicateID indicates two descriptors share an id.
	ErrDuplicateID = errors.New("catalog: duplicate algorithm id")
	// ErrIncomplete indicates a descriptor has an unpopulated field.
	ErrIncomplete = errors.New("catalog: incomplete descriptor")
	// ErrInvalidDifficulty indicates a difficulty outside Beginner..Advanced.
	ErrInvalidDifficulty = errors.New("catalog: invalid difficulty")
	// ErrDuplicateFormula indicates two formulas share a label.
	ErrDuplicateFormula = errors.New("catalog: duplicate formula label")
)

// UnknownAlgorithmError is returned by Get for an unrecognized id.
type UnknownAlgorithmError struct {
	ID string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("catalog: algorithm %q not found", e.ID)
}

func (e *UnknownAlgorithmError) Unwrap() error { return ErrNotFound }

// IncompleteError names the descriptor and field that failed validation.
type IncompleteError struct {
	ID    string
	Field string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("catalog: descriptor %q: missing %s", e.ID, e.Field)
}

func (e *IncompleteError) Unwrap() error { return ErrIncomplete }
