package shared

import "errors"

var (
	// ErrInvalidInput indicates a value outside the accepted domain.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a referenced id missing from its collection.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientStock indicates a sale quantity above available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrReferentialConflict indicates a delete blocked by existing sales.
	ErrReferentialConflict = errors.New("record has associated sales")
)
