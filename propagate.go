package react

// flush runs one propagation pass from the given input cells, then fires
// the callbacks of every compute cell whose value changed.
//
// Traversal is breadth-first along the subs adjacency. A cell reachable via
// more than one path may be recomputed more than once; only its first-seen
// "before" value and its final value take part in change detection, so a
// diamond never double-fires. Termination follows from the graph being
// acyclic: a cell can only depend on cells that already existed when it was
// created.
func (r *Reactor[T]) flush(roots []InputCellID) {
	before := make(map[int]T)
	var order []int // first-visit order, also the firing order

	var queue []int
	for _, root := range roots {
		queue = append(queue, r.inputSubs[root]...)
	}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		c := r.computeCells[idx]
		if _, seen := before[idx]; !seen {
			before[idx] = c.value
			order = append(order, idx)
		}

		c.value = r.eval(c)
		queue = append(queue, c.subs...)
	}

	// fire only once the whole graph has stabilized, so no callback can
	// observe an intermediate value
	for _, idx := range order {
		c := r.computeCells[idx]
		if c.value == before[idx] {
			continue
		}

		for _, fn := range c.callbacks {
			if fn != nil {
				fn(c.value)
			}
		}
	}
}
