package event

import "errors"

// Sentinel errors for emitters.
var (
	// ErrNilListener is returned when a nil listener is provided.
	ErrNilListener = errors.New("listener cannot be nil")

	// ErrSubscriptionNotFound is returned when removing an unknown subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
