package algovista

import (
	"errors"
	"fmt"

	"github.com/iayr1/algovista-sub001/catalog"
	"github.com/iayr1/algovista-sub001/widget"
)

var (
	// ErrNotFound is returned when an algorithm id is not in the catalog.
	ErrNotFound = errors.New("algovista: not found")

	// ErrInvalidConcurrency is returned by Publish for a negative concurrency.
	ErrInvalidConcurrency = errors.New("algovista: concurrency must not be negative")
)

// ErrUnknownAlgorithm reports a lookup of an id that is not in the catalog.
// It satisfies errors.Is(err, ErrNotFound).
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrUnknownAlgorithm struct {
	ID    string
	cause error
}

func (e *ErrUnknownAlgorithm) Error() string {
	return fmt.Sprintf("algovista: unknown algorithm %q", e.ID)
}

func (e *ErrUnknownAlgorithm) Unwrap() []error { return []error{ErrNotFound, e.cause} }

// ErrRender wraps an infrastructure failure while producing a view.
type ErrRender struct {
	View  string
	ID    string
	cause error
}

func (e *ErrRender) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("algovista: render %s: %v", e.View, e.cause)
	}
	return fmt.Sprintf("algovista: render %s %q: %v", e.View, e.ID, e.cause)
}

func (e *ErrRender) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var unknown *catalog.UnknownAlgorithmError
	if errors.As(err, &unknown) {
		return &ErrUnknownAlgorithm{ID: unknown.ID, cause: err}
	}
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	// A descriptor naming a widget with no implementation is a catalog
	// authoring bug; keep it distinguishable from a missing id.
	if errors.Is(err, widget.ErrUnknownKind) {
		return fmt.Errorf("algovista: %w", err)
	}

	return err
}
