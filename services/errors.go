package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// PlacementError wraps any failure inside the order placement transaction.
// The transaction has been rolled back by the time callers see it.
type PlacementError struct {
	Err error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("failed to place order: %v", e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}
