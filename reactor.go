package react

import "slices"

// Reactor owns a dependency graph of input and compute cells and keeps
// every compute cell consistent as inputs change.
//
// A Reactor expects a single logical owner: it is not safe for concurrent
// use, and callbacks must not call back into it.
type Reactor[T comparable] struct {
	inputs       []T
	computeCells []*computeCell[T]

	// inputSubs[i] holds the compute cells that depend directly on input i
	inputSubs [][]int

	batchDepth int
	pending    []InputCellID
}

func New[T comparable]() *Reactor[T] {
	return &Reactor[T]{}
}

// CreateInput creates an input cell holding the given initial value.
func (r *Reactor[T]) CreateInput(initial T) InputCellID {
	r.inputs = append(r.inputs, initial)
	r.inputSubs = append(r.inputSubs, nil)

	return InputCellID(len(r.inputs) - 1)
}

// CreateCompute creates a compute cell derived from the given dependencies.
// The compute function receives dependency values in declared order. The
// cell's value is evaluated immediately and kept up to date after every
// input write.
//
// If a dependency names no existing cell, nothing is created and the
// returned error reports that dependency.
func (r *Reactor[T]) CreateCompute(deps []CellID, compute func([]T) T) (ComputeCellID, error) {
	for _, dep := range deps {
		if !r.exists(dep) {
			return 0, &UnknownDependencyError{Dep: dep}
		}
	}

	c := &computeCell[T]{
		deps:    slices.Clone(deps),
		compute: compute,
	}
	c.value = r.eval(c)

	r.computeCells = append(r.computeCells, c)
	id := len(r.computeCells) - 1

	for _, dep := range deps {
		switch dep := dep.(type) {
		case InputCellID:
			if !slices.Contains(r.inputSubs[dep], id) {
				r.inputSubs[dep] = append(r.inputSubs[dep], id)
			}
		case ComputeCellID:
			upstream := r.computeCells[dep]
			if !slices.Contains(upstream.subs, id) {
				upstream.subs = append(upstream.subs, id)
			}
		}
	}

	return ComputeCellID(id), nil
}

// Value returns the current value of the given cell. The second return is
// false if the cell does not exist.
func (r *Reactor[T]) Value(id CellID) (T, bool) {
	switch id := id.(type) {
	case InputCellID:
		if int(id) >= 0 && int(id) < len(r.inputs) {
			return r.inputs[id], true
		}
	case ComputeCellID:
		if int(id) >= 0 && int(id) < len(r.computeCells) {
			return r.computeCells[id].value, true
		}
	}

	var zero T
	return zero, false
}

// SetValue stores a new value into an input cell and propagates it through
// every dependent compute cell. Callbacks of cells whose value changed fire
// exactly once each, after the whole graph has stabilized.
//
// Returns false without effect if the cell does not exist.
func (r *Reactor[T]) SetValue(id InputCellID, value T) bool {
	if int(id) < 0 || int(id) >= len(r.inputs) {
		return false
	}

	// a write of the current value cannot change anything downstream
	if r.inputs[id] == value {
		return true
	}

	r.inputs[id] = value

	if r.batchDepth > 0 {
		if !slices.Contains(r.pending, id) {
			r.pending = append(r.pending, id)
		}
		return true
	}

	r.flush([]InputCellID{id})
	return true
}

func (r *Reactor[T]) exists(id CellID) bool {
	switch id := id.(type) {
	case InputCellID:
		return int(id) >= 0 && int(id) < len(r.inputs)
	case ComputeCellID:
		return int(id) >= 0 && int(id) < len(r.computeCells)
	}

	return false
}

func (r *Reactor[T]) eval(c *computeCell[T]) T {
	values := make([]T, len(c.deps))
	for i, dep := range c.deps {
		values[i], _ = r.Value(dep)
	}

	return c.compute(values)
}
