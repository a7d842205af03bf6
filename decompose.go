package runenorm

// decompose appends the full decomposition of r to dst, each code point
// tagged with its own combining class. p must be the properties of r. With
// compat set the compatibility decomposition is used, otherwise the
// canonical one. Code points without a decomposition are appended as is.
func (t *propertyTable) decompose(dst []entry, r rune, p props, compat bool) []entry {
	if isHangul(r) {
		return decomposeHangul(dst, r)
	}
	off := p.canon
	if compat {
		off = p.compat
	}
	if off == 0 {
		return append(dst, entry{r: r, ccc: p.ccc})
	}
	for _, x := range t.decomposition(off) {
		dst = append(dst, entry{r: x, ccc: t.lookup(x).ccc})
	}
	return dst
}
