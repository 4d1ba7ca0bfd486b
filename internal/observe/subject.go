// Package observe provides value streams with replay-last semantics.
package observe

// Observable is the read side of a Subject.
type Observable[T any] interface {
	// Value returns the most recently published value.
	Value() T

	// Subscribe registers fn and immediately calls it with the current value.
	// The returned func removes the subscription.
	Subscribe(fn func(T)) (unsubscribe func())
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subject holds a current value and notifies subscribers synchronously
// on every Next, in subscription order.
// It is not safe for concurrent use.
type Subject[T any] struct {
	value  T
	nextID int
	subs   []subscriber[T]
}

// NewSubject creates a subject with an initial value.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{value: initial}
}

// Value returns the current value.
func (s *Subject[T]) Value() T {
	return s.value
}

// Next stores v and publishes it to every subscriber before returning.
func (s *Subject[T]) Next(v T) {
	s.value = v

	// Copy so subscribers may unsubscribe while being notified.
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Subscribe registers fn, replays the current value to it, and returns
// an idempotent unsubscribe func.
func (s *Subject[T]) Subscribe(fn func(T)) func() {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})

	fn(s.value)

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of subscribers.
func (s *Subject[T]) Len() int {
	return len(s.subs)
}
