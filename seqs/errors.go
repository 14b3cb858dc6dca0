package seqs

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by sequence operations.
//
// Argument errors are programming mistakes and are raised as panics at the
// call, before anything is iterated. The panic value wraps one of these
// sentinels, so a recovering caller can test it with errors.Is.
var (
	// ErrNegativeCount is raised by Take, Drop and CopyN for n < 0.
	ErrNegativeCount = errors.New("seqs: count must be >= 0")

	// ErrInvalidWindow is raised by Slide for k < 1.
	ErrInvalidWindow = errors.New("seqs: k must be >= 1")

	// ErrNilFunc is raised when a function or predicate argument is nil.
	ErrNilFunc = errors.New("seqs: function argument is nil")

	// ErrNilSource is raised when a source argument is nil.
	ErrNilSource = errors.New("seqs: source is nil")

	// ErrCapabilityViolation is raised when a sequence asserted non-empty
	// through UnsafeNonEmpty or UnsafeNonEmptyFinite turns out to be empty.
	// It surfaces at the first traversal, not at construction.
	ErrCapabilityViolation = errors.New("seqs: sequence asserted non-empty is empty")

	// ErrMutationNotSupported is returned by Iterator.Remove.
	ErrMutationNotSupported = errors.New("seqs: sequences cannot be modified through an iterator")
)

func checkCount(op string, n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: %s(%d)", ErrNegativeCount, op, n))
	}
}

func checkWindow(op string, k int) {
	if k < 1 {
		panic(fmt.Errorf("%w: %s(%d)", ErrInvalidWindow, op, k))
	}
}

func nilFunc(op string) error {
	return fmt.Errorf("%w: %s", ErrNilFunc, op)
}

func nilSource(op string) error {
	return fmt.Errorf("%w: %s", ErrNilSource, op)
}
