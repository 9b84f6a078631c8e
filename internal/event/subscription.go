package event

import "sync/atomic"

// Subscription is the handle returned by Emitter.On.
type Subscription interface {
	ID() string
	Priority() Priority
	// IsActive is false once the listener was cancelled or, for a
	// once-listener, after its first call.
	IsActive() bool
	Cancel()
}

// SubscriptionConfig holds the options a listener was attached with.
type SubscriptionConfig struct {
	Priority Priority
	Once     bool
}

// DefaultSubscriptionConfig attaches at PriorityNormal.
func DefaultSubscriptionConfig() SubscriptionConfig {
	return SubscriptionConfig{Priority: PriorityNormal}
}

// SubscriptionOption adjusts a SubscriptionConfig.
type SubscriptionOption func(*SubscriptionConfig)

// WithPriority places the listener in tier p.
func WithPriority(p Priority) SubscriptionOption {
	return func(c *SubscriptionConfig) { c.Priority = p }
}

// WithOnce cancels the listener after it has run once.
func WithOnce() SubscriptionOption {
	return func(c *SubscriptionConfig) { c.Once = true }
}

type subscription[T any] struct {
	id       string
	seq      uint64
	config   SubscriptionConfig
	listener Listener[T]
	owner    *Emitter[T]
	active   atomic.Bool
}

func (s *subscription[T]) ID() string         { return s.id }
func (s *subscription[T]) Priority() Priority { return s.config.Priority }
func (s *subscription[T]) IsActive() bool     { return s.active.Load() }

func (s *subscription[T]) Cancel() {
	if s.active.Swap(false) && s.owner != nil {
		s.owner.remove(s.id)
	}
}
