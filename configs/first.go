package configs

import (
	"errors"
)

// First decodes the first value at path. ok is false, with a nil error, when
// no document defines path.
func First[T any](loader Loader, path string) (value T, ok bool, err error) {
	err = loader.AssignFirst(path, &value)
	switch {
	case errors.Is(err, ErrValueNotFound):
		return value, false, nil
	case err != nil:
		return value, false, err
	}
	return value, true, nil
}
