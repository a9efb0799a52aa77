package storage

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrConflict = errors.New("resource conflict (e.g., duplicate key)")

// ErrStaleState signals that a conditional update matched no row because the
// record was no longer in the expected state.
var ErrStaleState = errors.New("record not in expected state")

// ErrInsufficientCredits signals that a conditional debit found the credit
// counter already at zero.
var ErrInsufficientCredits = errors.New("no credits remaining")
