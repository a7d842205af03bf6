package runenorm

// compose applies the Canonical Composition Algorithm to b, which must be in
// canonical order. A composite replaces its starter in place and the
// absorbed entry is marked with cccConsumed.
func (t *propertyTable) compose(b []entry) {
	starter := -1
	// Combining class of the last entry left between the starter and the
	// current position, -1 if there is none.
	last := -1
	for i := range b {
		e := &b[i]
		if e.ccc == cccConsumed {
			continue
		}
		if starter >= 0 {
			// A combining class barrier blocks e from the starter.
			blocked := last >= 0 && (last == cccStarter || uint8(last) >= e.ccc)
			if !blocked {
				if c, ok := t.composePair(b[starter].r, e.r); ok {
					b[starter].r = c
					e.ccc = cccConsumed
					continue
				}
			}
		}
		if e.ccc != cccStarter {
			last = int(e.ccc)
			continue
		}
		starter, last = i, -1
		composeHangul(b, i)
	}
}
