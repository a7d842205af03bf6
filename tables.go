package runenorm

//go:generate go run gen_normtest.go

import (
	"maps"
	"slices"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// rawChar collects the UCD data of a code point that is not inert.
type rawChar struct {
	ccc    uint8
	canon  []rune // full canonical decomposition
	compat []rune // full compatibility decomposition

	// Set when the code point does not survive composition: singletons,
	// exclusions and non-starter decompositions.
	canonOneWay  bool
	compatOneWay bool
}

// tableBuilder derives the property table from the normalization data of
// golang.org/x/text, the single UCD source of this package.
type tableBuilder struct {
	chars   map[rune]*rawChar
	pairs   map[rune][][2]rune // first -> (second, composite)
	seconds map[rune]bool      // runes that may combine backward

	t           *propertyTable
	decompIndex map[string]uint32
}

func buildTables() *propertyTable {
	start := time.Now()
	b := &tableBuilder{
		chars:       make(map[rune]*rawChar),
		pairs:       make(map[rune][][2]rune),
		seconds:     make(map[rune]bool),
		t:           &propertyTable{decomps: []rune{0}, comps: []rune{0}},
		decompIndex: make(map[string]uint32),
	}
	b.loadChars()
	b.loadCompositions()
	b.makeIndex()

	log.Debugf("Built Unicode %s normalization tables in %v: %d records, "+
		"%d blocks, %d decomposition runes, %d composition runes",
		UnicodeVersion, time.Since(start), len(b.t.records),
		len(b.t.stage2)/blockSize, len(b.t.decomps), len(b.t.comps))
	return b.t
}

// loadChars records the combining class and decompositions of every code
// point that has any.
func (b *tableBuilder) loadChars() {
	var enc [utf8.UTFMax]byte
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if !utf8.ValidRune(r) || isHangul(r) {
			continue
		}
		s := enc[:utf8.EncodeRune(enc[:], r)]
		pd := norm.NFD.Properties(s)
		pk := norm.NFKD.Properties(s)
		canon, compat := pd.Decomposition(), pk.Decomposition()
		if pd.CCC() == 0 && canon == nil && compat == nil {
			continue
		}
		c := &rawChar{
			ccc:    pd.CCC(),
			canon:  decodeRunes(canon),
			compat: decodeRunes(compat),
		}
		if canon != nil {
			c.canonOneWay = !norm.NFC.IsNormal(s)
		}
		if compat != nil {
			c.compatOneWay = !norm.NFKC.IsNormal(s)
		}
		b.chars[r] = c
	}
}

// loadCompositions derives the primary composites from the canonical
// decompositions of the code points that survive composition.
func (b *tableBuilder) loadCompositions() {
	for _, r := range slices.Sorted(maps.Keys(b.chars)) {
		c := b.chars[r]
		if len(c.canon) < 2 || c.canonOneWay {
			continue
		}
		first, second, ok := primaryPair(r, c.canon)
		if !ok {
			log.Warnf("No primary composition pair found for %U", r)
			continue
		}
		b.pairs[first] = append(b.pairs[first], [2]rune{second, r})
		b.seconds[second] = true
	}
}

// primaryPair finds the two code points r composes from. The full
// decomposition d holds the second code point somewhere after the first
// position; the remaining code points compose to the first.
func primaryPair(r rune, d []rune) (first, second rune, ok bool) {
	want := string(r)
	rest := make([]rune, 0, len(d)-1)
	for j := len(d) - 1; j > 0; j-- {
		rest = append(append(rest[:0], d[:j]...), d[j+1:]...)
		head := []rune(norm.NFC.String(string(rest)))
		if len(head) != 1 {
			continue
		}
		if norm.NFC.String(string([]rune{head[0], d[j]})) == want {
			return head[0], d[j], true
		}
	}
	return 0, 0, false
}

// combinesBackward reports whether r can be the second code point of a
// composition (quick-check Maybe for the composing forms).
func (b *tableBuilder) combinesBackward(r rune) bool {
	return b.seconds[r] || isJamoV(r) || isJamoT(r)
}

// nonStarter reports whether r counts as a non-starter for Stream-Safe Text
// Format. Runes that combine backward count as well, since they may leave
// their successors attached to an earlier starter.
func (b *tableBuilder) nonStarter(r rune) bool {
	if c := b.chars[r]; c != nil && c.ccc != 0 {
		return true
	}
	return b.combinesBackward(r)
}

// record computes the properties of r, adding its decompositions and
// compositions to the data pools.
func (b *tableBuilder) record(r rune) props {
	p := props{qc: qcAll}
	if isHangul(r) {
		p.qc = qcNFC | qcNFKC
		p.trail = 2
		if isHangulLV(r) {
			p.trail = 1
		}
		return p
	}

	c := b.chars[r]
	expansion := []rune{r}
	if c != nil {
		p.ccc = c.ccc
		if c.canon != nil {
			p.qc &^= qcNFD
			if c.canonOneWay {
				p.qc &^= qcNFC
			}
			p.canon = b.addDecomposition(c.canon)
		}
		if c.compat != nil {
			p.qc &^= qcNFKD
			if c.compatOneWay {
				p.qc &^= qcNFKC
			}
			p.compat = b.addDecomposition(c.compat)
			expansion = c.compat
		}
	}
	if b.combinesBackward(r) {
		p.qc &^= qcNFC | qcNFKC
	}
	if pairs := b.pairs[r]; len(pairs) > 0 {
		p.comp = uint32(len(b.t.comps))
		b.t.comps = append(b.t.comps, rune(len(pairs)))
		for _, pair := range pairs {
			b.t.comps = append(b.t.comps, pair[0], pair[1])
		}
	}

	for _, x := range expansion {
		if !b.nonStarter(x) {
			break
		}
		p.lead++
	}
	for i := len(expansion) - 1; i >= 0; i-- {
		if !b.nonStarter(expansion[i]) {
			break
		}
		p.trail++
	}
	return p
}

func (b *tableBuilder) addDecomposition(d []rune) uint32 {
	key := string(d)
	if off, ok := b.decompIndex[key]; ok {
		return off
	}
	off := uint32(len(b.t.decomps))
	b.t.decomps = append(b.t.decomps, rune(len(d)))
	b.t.decomps = append(b.t.decomps, d...)
	b.decompIndex[key] = off
	return off
}

// makeIndex builds the two-level index with deduplicated records and blocks.
func (b *tableBuilder) makeIndex() {
	t := b.t
	// Blocks holding only inert code points share a single record.
	blocks := make(map[rune]bool)
	mark := func(r rune) { blocks[r>>blockShift] = true }
	for r := range b.chars {
		mark(r)
	}
	for r := range b.seconds {
		mark(r)
	}
	for r := range b.pairs {
		mark(r)
	}
	for r := rune(hangulBase); r < hangulEnd; r += blockSize {
		mark(r)
	}
	mark(hangulEnd - 1)
	for r := rune(jamoLBase); r < jamoTBase+jamoTCount; r++ {
		mark(r)
	}

	recordIndex := make(map[props]uint16)
	indexOf := func(p props) uint16 {
		idx, ok := recordIndex[p]
		if !ok {
			idx = uint16(len(t.records))
			recordIndex[p] = idx
			t.records = append(t.records, p)
		}
		return idx
	}
	blockIndex := make(map[[blockSize]uint16]uint16)
	t.stage1 = make([]uint16, (unicode.MaxRune+1)>>blockShift)

	var block [blockSize]uint16
	for start := rune(0); start <= unicode.MaxRune; start += blockSize {
		if blocks[start>>blockShift] {
			for i := range block {
				block[i] = indexOf(b.record(start + rune(i)))
			}
		} else {
			inert := indexOf(props{qc: qcAll})
			for i := range block {
				block[i] = inert
			}
		}
		bi, ok := blockIndex[block]
		if !ok {
			bi = uint16(len(t.stage2) >> blockShift)
			blockIndex[block] = bi
			t.stage2 = append(t.stage2, block[:]...)
		}
		t.stage1[start>>blockShift] = bi
	}
}

func decodeRunes(b []byte) []rune {
	if b == nil {
		return nil
	}
	return []rune(string(b))
}
