package react

// Batch runs fn with propagation deferred: writes inside the batch only
// store their values, and a single propagation pass runs when the outermost
// batch returns. Each callback fires at most once per batch, with the final
// value. Batches nest; only the outermost one flushes.
func (r *Reactor[T]) Batch(fn func()) {
	r.batchDepth++
	defer func() {
		r.batchDepth--
		if r.batchDepth > 0 {
			return
		}

		roots := r.pending
		r.pending = nil

		if len(roots) > 0 {
			r.flush(roots)
		}
	}()

	fn()
}
