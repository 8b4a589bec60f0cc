// Package collerrors holds the error kinds shared by the node utilities and
// the linked containers.
package collerrors

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyContainer is returned when an element is removed from a
	// container that has none.
	ErrEmptyContainer = errors.New("container is empty")

	// ErrInvalidArgument is returned when an operation is given input it
	// cannot store or build from.
	ErrInvalidArgument = errors.New("invalid argument")
)

// EmptyContainerf wraps ErrEmptyContainer with a formatted message and a
// stack trace.
func EmptyContainerf(format string, args ...any) error {
	return errors.Wrapf(ErrEmptyContainer, format, args...)
}

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message and a
// stack trace.
func InvalidArgumentf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func IsEmptyContainer(err error) bool {
	return errors.Is(err, ErrEmptyContainer)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
