package rebound

import "errors"

var (
	// ErrBodyNotFound is returned when a body handle does not resolve to a
	// live body, typically because the body was removed and the handle went
	// stale.
	ErrBodyNotFound = errors.New("rebound: body not found")

	// ErrColliderNotFound is the collider set equivalent of ErrBodyNotFound.
	ErrColliderNotFound = errors.New("rebound: collider not found")
)
