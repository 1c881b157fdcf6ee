package obb

import "github.com/pkg/errors"

// InvariantError is the panic value raised when the exact solver finds its
// precomputed hull data inconsistent. It signals a bug, not bad input.
type InvariantError struct {
	err error
}

func (e *InvariantError) Error() string {
	return e.err.Error()
}

func (e *InvariantError) Unwrap() error {
	return e.err
}

func fatalf(format string, args ...any) {
	panic(&InvariantError{err: errors.Errorf(format, args...)})
}
