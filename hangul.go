package runenorm

// Hangul syllables are decomposed and composed arithmetically.
// See https://unicode.org/reports/tr15/#Hangul for the algorithm.
const (
	hangulBase  = 0xAC00
	hangulCount = jamoLCount * jamoNCount // 11172
	hangulEnd   = hangulBase + hangulCount

	jamoLBase = 0x1100
	jamoVBase = 0x1161
	jamoTBase = 0x11A7 // one before the first trailing consonant

	jamoLCount = 19
	jamoVCount = 21
	jamoTCount = 28
	jamoNCount = jamoVCount * jamoTCount // 588
)

func isHangul(r rune) bool {
	return r >= hangulBase && r < hangulEnd
}

// isHangulLV reports whether r is a syllable without a trailing consonant.
func isHangulLV(r rune) bool {
	return isHangul(r) && (r-hangulBase)%jamoTCount == 0
}

func isJamoL(r rune) bool {
	return r >= jamoLBase && r < jamoLBase+jamoLCount
}

func isJamoV(r rune) bool {
	return r >= jamoVBase && r < jamoVBase+jamoVCount
}

func isJamoT(r rune) bool {
	return r > jamoTBase && r < jamoTBase+jamoTCount
}

// decomposeHangul appends the L, V and optional T jamo of the syllable r.
// All jamo are starters.
func decomposeHangul(dst []entry, r rune) []entry {
	s := r - hangulBase
	dst = append(dst,
		entry{r: jamoLBase + s/jamoNCount},
		entry{r: jamoVBase + (s%jamoNCount)/jamoTCount},
	)
	if t := s % jamoTCount; t != 0 {
		dst = append(dst, entry{r: jamoTBase + t})
	}
	return dst
}

// composeHangul composes the Hangul run starting at b[i], which must be an
// unconsumed starter: L+V, L+V+T or LV+T. Absorbed jamo are marked consumed.
// It reports whether anything was composed.
func composeHangul(b []entry, i int) bool {
	r := b[i].r
	switch {
	case isJamoL(r):
		if i+1 >= len(b) || !isJamoV(b[i+1].r) {
			return false
		}
		r = hangulBase + ((r-jamoLBase)*jamoVCount+(b[i+1].r-jamoVBase))*jamoTCount
		b[i+1].ccc = cccConsumed
		if i+2 < len(b) && isJamoT(b[i+2].r) {
			r += b[i+2].r - jamoTBase
			b[i+2].ccc = cccConsumed
		}
	case isHangulLV(r):
		if i+1 >= len(b) || !isJamoT(b[i+1].r) {
			return false
		}
		r += b[i+1].r - jamoTBase
		b[i+1].ccc = cccConsumed
	default:
		return false
	}
	b[i].r = r
	return true
}
