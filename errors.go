package react

import (
	"errors"
	"fmt"
)

var (
	// ErrNonexistentCell reports a compute cell id that names no cell.
	ErrNonexistentCell = errors.New("react: nonexistent cell")

	// ErrNonexistentCallback reports a callback id that was never issued
	// for the cell, or was already removed.
	ErrNonexistentCallback = errors.New("react: nonexistent callback")
)

// UnknownDependencyError reports the first dependency that named no
// existing cell when creating a compute cell.
type UnknownDependencyError struct {
	Dep CellID
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("react: unknown dependency %v", e.Dep)
}
