package event

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Emitter delivers events of one kind to listeners in priority order.
// The zero value is not usable; create emitters with NewEmitter.
type Emitter[T any] struct {
	mu   sync.RWMutex
	name string
	subs []*subscription[T]
	seq  uint64
}

// NewEmitter creates an emitter. The name is reported in Info.
func NewEmitter[T any](name string) *Emitter[T] {
	return &Emitter[T]{name: name}
}

// Name returns the emitter name.
func (e *Emitter[T]) Name() string {
	return e.name
}

// On attaches a listener and returns its subscription.
// The listener is inserted after every listener of the same or higher tier.
func (e *Emitter[T]) On(fn Listener[T], opts ...SubscriptionOption) Subscription {
	if fn == nil {
		panic(ErrNilListener)
	}

	config := DefaultSubscriptionConfig()
	for _, opt := range opts {
		opt(&config)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.seq++
	sub := &subscription[T]{
		id:       uuid.NewString(),
		seq:      e.seq,
		config:   config,
		listener: fn,
		owner:    e,
	}
	sub.active.Store(true)

	e.subs = append(e.subs, sub)
	sort.SliceStable(e.subs, func(i, j int) bool {
		if e.subs[i].config.Priority != e.subs[j].config.Priority {
			return e.subs[i].config.Priority < e.subs[j].config.Priority
		}
		return e.subs[i].seq < e.subs[j].seq
	})

	return sub
}

// Off detaches the subscription with the given ID.
func (e *Emitter[T]) Off(id string) error {
	e.mu.RLock()
	var found *subscription[T]
	for _, s := range e.subs {
		if s.id == id {
			found = s
			break
		}
	}
	e.mu.RUnlock()

	if found == nil {
		return ErrSubscriptionNotFound
	}
	found.Cancel()
	return nil
}

// remove drops a subscription from the list.
func (e *Emitter[T]) remove(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, s := range e.subs {
		if s.id == id {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return
		}
	}
}

// Fire delivers data to every active listener until one stops propagation.
func (e *Emitter[T]) Fire(data T) *Info {
	info := &Info{Name: e.name}

	for _, sub := range e.snapshot() {
		// A listener earlier in this delivery may have cancelled it.
		if !sub.IsActive() {
			continue
		}
		if sub.config.Once {
			sub.Cancel()
		}

		info.calls++
		sub.listener(info, data)

		if info.stopped {
			break
		}
	}

	return info
}

// Count returns the number of active listeners.
func (e *Emitter[T]) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.subs)
}

// Clear detaches every listener.
func (e *Emitter[T]) Clear() {
	for _, sub := range e.snapshot() {
		sub.Cancel()
	}
}

// snapshot returns a copy of the listener list so delivery is not affected
// by listeners attaching or detaching mid-event.
func (e *Emitter[T]) snapshot() []*subscription[T] {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.subs) == 0 {
		return nil
	}
	result := make([]*subscription[T], len(e.subs))
	copy(result, e.subs)
	return result
}
