package pipeline

import "errors"

var (
	// ErrInvalidSource is returned when a document does not name exactly one
	// source or the source is malformed.
	ErrInvalidSource = errors.New("pipeline: invalid source")

	// ErrInvalidStage is returned for a stage missing a required field or
	// holding an out-of-range one.
	ErrInvalidStage = errors.New("pipeline: invalid stage")

	// ErrUnknownOp is returned for a stage naming an op that does not exist.
	ErrUnknownOp = errors.New("pipeline: unknown op")

	// ErrUnbounded is returned when a stage or the final result needs a
	// bounded sequence and boundedness cannot be proven.
	ErrUnbounded = errors.New("pipeline: sequence is not provably bounded")

	// ErrMissingFunc is returned when a stage refers to a function the
	// script does not define.
	ErrMissingFunc = errors.New("pipeline: missing function")

	// ErrScript wraps Starlark compile and call errors.
	ErrScript = errors.New("pipeline: script error")
)
