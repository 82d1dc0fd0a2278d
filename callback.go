package react

// AddCallback registers fn to run with the cell's new value whenever the
// cell changes as the result of an input write. The second return is false
// if the cell does not exist.
//
// Callback ids are monotonically increasing per cell and never reused, even
// after removal.
func (r *Reactor[T]) AddCallback(id ComputeCellID, fn func(T)) (CallbackID, bool) {
	if int(id) < 0 || int(id) >= len(r.computeCells) {
		return 0, false
	}

	c := r.computeCells[id]
	c.callbacks = append(c.callbacks, fn)

	return CallbackID(len(c.callbacks) - 1), true
}

// RemoveCallback removes a callback previously returned by AddCallback. A
// removed callback never fires again, and removing it a second time fails
// with ErrNonexistentCallback.
func (r *Reactor[T]) RemoveCallback(id ComputeCellID, cb CallbackID) error {
	if int(id) < 0 || int(id) >= len(r.computeCells) {
		return ErrNonexistentCell
	}

	c := r.computeCells[id]
	if int(cb) < 0 || int(cb) >= len(c.callbacks) || c.callbacks[cb] == nil {
		return ErrNonexistentCallback
	}

	c.callbacks[cb] = nil // tombstone so later ids stay stable
	return nil
}
