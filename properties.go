package runenorm

import "sync"

// Quick-check "Yes" bits, one per form. A set bit means the code point on
// its own never requires decomposition, reordering, or composition for that
// form.
const (
	qcNFD = 1 << iota
	qcNFC
	qcNFKD
	qcNFKC

	qcAll = qcNFD | qcNFC | qcNFKD | qcNFKC
)

// Canonical combining classes with a special meaning to the engine.
const (
	cccStarter  = 0
	cccConsumed = 255 // slot absorbed by composition, never emitted
)

// The property table is a two-level index: the high bits of a code point
// select a block, the low bits select a record within that block.
const (
	blockShift = 7
	blockSize  = 1 << blockShift
	blockMask  = blockSize - 1
)

// props holds the normalization properties of a single code point.
type props struct {
	ccc   uint8 // canonical combining class
	qc    uint8 // quick-check "Yes" bits (qcNFD etc.)
	lead  uint8 // leading non-starters in the NFKD expansion
	trail uint8 // trailing non-starters in the NFKD expansion

	canon  uint32 // offset into decomps, 0 if there is no canonical decomposition
	compat uint32 // offset into decomps, 0 if there is no compatibility decomposition
	comp   uint32 // offset into comps, 0 if the code point never composes forward
}

// yes reports whether the quick-check bit qc is set.
func (p props) yes(qc uint8) bool {
	return p.qc&qc != 0
}

// boundaryBefore reports whether normalization to the form with quick-check
// bit qc never changes anything across a cut right before the code point.
func (p props) boundaryBefore(qc uint8) bool {
	return p.ccc == cccStarter && p.lead == 0 && p.yes(qc)
}

// propertyTable is the immutable normalization data shared by all sessions.
type propertyTable struct {
	stage1  []uint16 // block number per code point block
	stage2  []uint16 // record index per code point, blockSize entries per block
	records []props

	// decomps holds fully expanded decompositions as a length followed by
	// the code points. comps holds, per starter, a count followed by
	// (second, composite) pairs. Offset 0 of both is unused.
	decomps []rune
	comps   []rune
}

// lookup returns the properties of r. r must be a valid code point; no
// bounds checking is performed.
func (t *propertyTable) lookup(r rune) props {
	block := int(t.stage1[r>>blockShift])
	return t.records[t.stage2[block<<blockShift|int(r&blockMask)]]
}

// decomposition returns the expansion stored at offset off.
func (t *propertyTable) decomposition(off uint32) []rune {
	n := uint32(t.decomps[off])
	return t.decomps[off+1 : off+1+n]
}

// composePair returns the primary composite of first followed by second, if
// any. Hangul is not covered; see composeHangul.
func (t *propertyTable) composePair(first, second rune) (rune, bool) {
	off := t.lookup(first).comp
	if off == 0 {
		return 0, false
	}
	n := uint32(t.comps[off])
	for i := off + 1; i < off+1+2*n; i += 2 {
		if t.comps[i] == second {
			return t.comps[i+1], true
		}
	}
	return 0, false
}

var (
	tablesOnce sync.Once
	table      *propertyTable
)

// tables returns the process-wide property table, building it on first use.
func tables() *propertyTable {
	tablesOnce.Do(func() {
		table = buildTables()
	})
	return table
}
