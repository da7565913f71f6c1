package domain

import "errors"

// ErrDuplicateOperation is returned when an operation ID is registered twice
// for the same owner.
var ErrDuplicateOperation = errors.New("duplicate operation id")

// ErrManagerClosed is returned when registering against a host manager that
// has been shut down.
var ErrManagerClosed = errors.New("action manager closed")

// ErrInstanceReleased is returned by session manager calls after Close.
var ErrInstanceReleased = errors.New("session manager instance released")

// ErrTokenNotFound is returned when a token type has no stored value.
var ErrTokenNotFound = errors.New("token not found")
