package react

import "fmt"

// CellID names a cell in a Reactor. It is either an InputCellID or a
// ComputeCellID; the two kinds are never mutually assignable.
type CellID interface {
	isCellID()
}

// InputCellID is a unique identifier for an input cell.
type InputCellID int

func (InputCellID) isCellID() {}

func (id InputCellID) String() string {
	return fmt.Sprintf("input(%d)", int(id))
}

// ComputeCellID is a unique identifier for a compute cell.
type ComputeCellID int

func (ComputeCellID) isCellID() {}

func (id ComputeCellID) String() string {
	return fmt.Sprintf("compute(%d)", int(id))
}

// CallbackID identifies a callback within its owning compute cell.
type CallbackID int

type computeCell[T comparable] struct {
	deps    []CellID
	compute func([]T) T

	value T

	// callbacks are tombstoned with nil so ids stay stable after removal
	callbacks []func(T)

	// subs holds the compute cells that depend directly on this one
	subs []int
}
