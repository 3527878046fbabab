package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrLastItem indicates an attempt to remove the only line item of an order.
	ErrLastItem = errors.New("cannot remove last item")

	// ErrInvalidTransition indicates a status change the order lifecycle
	// does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput marks field-level input errors caught before any
	// store call.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports which parts of an order are missing before commit.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "order invalid: missing " + strings.Join(e.Missing, ", ")
}

// DeleteRejectedError carries the store-provided reason a delete was refused.
type DeleteRejectedError struct {
	Reason string
}

func (e *DeleteRejectedError) Error() string {
	return "delete rejected: " + e.Reason
}
