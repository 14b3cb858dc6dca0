package configs

import "errors"

// ErrValueNotFound is returned when no loaded document defines a path.
var ErrValueNotFound = errors.New("configs: value not found")
