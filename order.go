package runenorm

// canonicalOrder sorts b by combining class as required by the Canonical
// Ordering Algorithm. Starters never move and code points with equal
// combining classes keep their relative order. Each pass ends at the last
// exchange of the previous one.
func canonicalOrder(b []entry) {
	for end := len(b); end > 1; {
		last := 0
		for i := 1; i < end; i++ {
			if c := b[i].ccc; c != cccStarter && c < b[i-1].ccc {
				b[i-1], b[i] = b[i], b[i-1]
				last = i
			}
		}
		end = last
	}
}
