// Package react implements a reactive dependency graph: input cells hold
// externally written values, compute cells derive values from other cells
// through pure functions, and callbacks observe each value change exactly
// once per write.
//
// The Reactor is the engine. Signal and Computed are a thin typed facade
// over the calling goroutine's default reactor.
package react

import "github.com/AnatoleLucet/react/internal"

// Default returns the calling goroutine's reactor for value type T,
// creating it on first use.
//
// Each goroutine keeps one reactor; asking for a second value type on the
// same goroutine starts a fresh reactor.
func Default[T comparable]() *Reactor[T] {
	if r, ok := internal.Current().(*Reactor[T]); ok {
		return r
	}

	r := New[T]()
	internal.Set(r)
	return r
}

type Signal[T comparable] struct {
	reactor *Reactor[T]
	id      InputCellID
}

// NewSignal creates an input cell on the goroutine's reactor and wraps it
// in a read/write handle.
func NewSignal[T comparable](initial T) *Signal[T] {
	r := Default[T]()

	return &Signal[T]{
		reactor: r,
		id:      r.CreateInput(initial),
	}
}

// Read the signal's current value.
func (s *Signal[T]) Read() T {
	v, _ := s.reactor.Value(s.id)
	return v
}

// Write a new value to the signal, triggering updates to any dependents.
func (s *Signal[T]) Write(v T) {
	s.reactor.SetValue(s.id, v)
}

// ID returns the underlying cell id, usable as a dependency.
func (s *Signal[T]) ID() CellID { return s.id }

type Computed[T comparable] struct {
	reactor *Reactor[T]
	id      ComputeCellID
}

// NewComputed creates a compute cell deriving its value from the given
// dependencies. The compute function receives dependency values in the
// order the dependencies were declared.
func NewComputed[T comparable](compute func([]T) T, deps ...CellID) (*Computed[T], error) {
	r := Default[T]()

	id, err := r.CreateCompute(deps, compute)
	if err != nil {
		return nil, err
	}

	return &Computed[T]{reactor: r, id: id}, nil
}

// Read the computed cell's current value.
func (c *Computed[T]) Read() T {
	v, _ := c.reactor.Value(c.id)
	return v
}

// OnChange registers fn to run with the cell's final value whenever the
// cell's value changes.
func (c *Computed[T]) OnChange(fn func(T)) CallbackID {
	id, _ := c.reactor.AddCallback(c.id, fn)
	return id
}

// RemoveOnChange removes a callback registered with OnChange.
func (c *Computed[T]) RemoveOnChange(id CallbackID) error {
	return c.reactor.RemoveCallback(c.id, id)
}

// ID returns the underlying cell id, usable as a dependency.
func (c *Computed[T]) ID() CellID { return c.id }

// NewBatch batches multiple signal writes into a single update cycle,
// instead of triggering updates after each write.
func NewBatch[T comparable](fn func()) {
	Default[T]().Batch(fn)
}
