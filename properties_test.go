package runenorm

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

// xtextForms maps each form to its golang.org/x/text counterpart, which is
// the reference the tests compare against.
var xtextForms = map[Form]norm.Form{
	NFC:  norm.NFC,
	NFD:  norm.NFD,
	NFKC: norm.NFKC,
	NFKD: norm.NFKD,
}

func TestLookup(t *testing.T) {
	r := require.New(t)
	tbl := tables()

	r.EqualValues(230, tbl.lookup(0x0301).ccc)
	r.EqualValues(202, tbl.lookup(0x0327).ccc)
	r.EqualValues(0, tbl.lookup('a').ccc)
	r.EqualValues(0, tbl.lookup(0xAC00).ccc)

	r.False(tbl.lookup(0x00C5).yes(qcNFD))
	r.True(tbl.lookup(0x00C5).yes(qcNFC))
	r.False(tbl.lookup(0x2126).yes(qcNFC))
	r.True(tbl.lookup(0x03A9).yes(qcNFC))
	r.False(tbl.lookup(0x0301).yes(qcNFC))
	r.True(tbl.lookup(0x0301).yes(qcNFD))
	r.False(tbl.lookup(0x1161).yes(qcNFC))
	r.True(tbl.lookup(0x1161).yes(qcNFD))
	r.True(tbl.lookup(0x1100).yes(qcNFC))
	r.False(tbl.lookup(0xFB01).yes(qcNFKC))
	r.True(tbl.lookup(0xFB01).yes(qcNFC))
	r.False(tbl.lookup(0xAC00).yes(qcNFD))
	r.True(tbl.lookup(0xAC00).yes(qcNFC))
	r.True(tbl.lookup(0x10FFFF).yes(qcNFKD))
}

func TestStreamSafeCounts(t *testing.T) {
	r := require.New(t)
	tbl := tables()

	r.EqualValues(1, tbl.lookup(0xAC00).trail)
	r.EqualValues(2, tbl.lookup(0xAC01).trail)
	r.EqualValues(1, tbl.lookup(0x0301).lead)
	r.EqualValues(1, tbl.lookup(0x0301).trail)
	r.EqualValues(2, tbl.lookup(0x0344).lead)
	r.EqualValues(0, tbl.lookup(0x00E9).lead)
	r.EqualValues(1, tbl.lookup(0x00E9).trail)
	r.EqualValues(2, tbl.lookup(0x1E09).trail)
	r.EqualValues(1, tbl.lookup(0x1161).lead)
	r.EqualValues(0, tbl.lookup('a').trail)
}

func TestDecompositionData(t *testing.T) {
	r := require.New(t)
	tbl := tables()

	r.Equal([]rune{0x63, 0x327, 0x301}, tbl.decomposition(tbl.lookup(0x1E09).canon))
	r.Equal([]rune{0x3A9}, tbl.decomposition(tbl.lookup(0x2126).canon))
	r.Equal([]rune{'f', 'i'}, tbl.decomposition(tbl.lookup(0xFB01).compat))
	r.Len(tbl.decomposition(tbl.lookup(0xFDFA).compat), maxDecomposition)
	r.Zero(tbl.lookup('a').canon)
	r.Zero(tbl.lookup(0xFB01).canon)
	r.Zero(tbl.lookup(0xAC00).canon)
}

func TestComposePair(t *testing.T) {
	tbl := tables()
	testCases := []struct {
		name          string
		first, second rune
		want          rune
		ok            bool
	}{
		{"e acute", 'e', 0x0301, 0x00E9, true},
		{"A ring", 'A', 0x030A, 0x00C5, true},
		{"c cedilla acute", 0x00E7, 0x0301, 0x1E09, true},
		{"excluded", 0x0915, 0x093C, 0, false},
		{"hangul is arithmetic", 0x1100, 0x1161, 0, false},
		{"no composite", 'x', 0x0301, 0, false},
		{"non-starter first", 0x0301, 0x0301, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tbl.composePair(tc.first, tc.second)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestTableAgainstUCD checks every code point against the normalization data
// the tables were derived from.
func TestTableAgainstUCD(t *testing.T) {
	tbl := tables()
	var (
		buf []entry
		enc [utf8.UTFMax]byte
	)
	runes := func(es []entry) []rune {
		rs := make([]rune, len(es))
		for i, e := range es {
			rs[i] = e.r
		}
		return rs
	}
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		p := tbl.lookup(r)
		s := string(enc[:utf8.EncodeRune(enc[:], r)])

		if want := norm.NFD.PropertiesString(s).CCC(); p.ccc != want {
			t.Fatalf("%U: ccc %d, want %d", r, p.ccc, want)
		}
		for _, f := range []Form{NFD, NFKD} {
			buf = tbl.decompose(buf[:0], r, p, f == NFKD)
			if len(buf) > maxDecomposition {
				t.Fatalf("%U: %s decomposition of %d code points", r, f.Name(), len(buf))
			}
			canonicalOrder(buf)
			want := xtextForms[f].String(s)
			if got := string(runes(buf)); got != want {
				t.Fatalf("%U: %s %+q, want %+q", r, f.Name(), got, want)
			}
		}
		if off := p.comp; off != 0 {
			n := uint32(tbl.comps[off])
			for i := off + 1; i < off+1+2*n; i += 2 {
				second, composite := tbl.comps[i], tbl.comps[i+1]
				if got := norm.NFC.String(string([]rune{r, second})); got != string(composite) {
					t.Fatalf("%U+%U: composite %U, NFC gives %+q", r, second, composite, got)
				}
			}
		}
	}
}

func TestBlocksDeduplicated(t *testing.T) {
	r := require.New(t)
	tbl := tables()

	r.Zero(len(tbl.stage2) % blockSize)
	r.Less(len(tbl.stage2)/blockSize, len(tbl.stage1)/4)
	r.Less(len(tbl.records), 1<<16)
}
