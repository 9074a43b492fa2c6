package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrEventNotFound = fmt.Errorf("event %w", ErrNotFound)
	ErrTokenNotFound = fmt.Errorf("token %w", ErrNotFound)
)

var (
	ErrNotAuthorized    = errors.New("not authorized")
	ErrInvalidSignature = errors.New("invalid wallet signature")
	ErrTransferDenied   = errors.New("transfer refused: caller does not own the token")
)

var (
	// ErrCounterOverflow means the monotonic id space is exhausted.
	// It is never recovered locally.
	ErrCounterOverflow   = errors.New("id counter overflow")
	ErrInconsistentState = errors.New("inconsistent ledger state")
	ErrAdminMismatch     = errors.New("configured admin differs from persisted admin")
)

var (
	ErrValidation = errors.New("validation error")
)
