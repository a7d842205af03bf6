package runenorm

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstSegment(t *testing.T) {
	testCases := []struct {
		name     string
		form     Form
		in       string
		segments []string
	}{
		{"ascii", NFC, "abc", []string{"a", "b", "c"}},
		{"marks stay attached", NFC, "a\u0301bc\u0327", []string{"a\u0301", "b", "c\u0327"}},
		{"leading marks", NFD, "\u0301\u0301a", []string{"\u0301\u0301", "a"}},
		{"jamo vowel composes", NFC, "\u1100\u1161\u11a8x", []string{"\u1100\u1161\u11a8", "x"}},
		{"ligature is a boundary for NFC", NFC, "a\ufb01", []string{"a", "\ufb01"}},
		{"ligature decomposes for NFKC", NFKC, "a\ufb01", []string{"a\ufb01"}},
		{"invalid byte", NFC, "a\xffb", []string{"a", "\xff", "b"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			str := tc.in
			for len(str) > 0 {
				var segment string
				segment, str = tc.form.FirstSegmentInString(str)
				got = append(got, segment)
			}
			require.Equal(t, tc.segments, got)
			require.Equal(t, tc.segments, slices.Collect(tc.form.Segments(tc.in)))

			got = got[:0]
			b := []byte(tc.in)
			for len(b) > 0 {
				var segment []byte
				segment, b = tc.form.FirstSegment(b)
				got = append(got, string(segment))
			}
			require.Equal(t, tc.segments, got)
		})
	}
}

func TestFirstSegmentEmpty(t *testing.T) {
	r := require.New(t)

	segment, rest := NFC.FirstSegment(nil)
	r.Nil(segment)
	r.Nil(rest)

	s, rs := NFD.FirstSegmentInString("")
	r.Empty(s)
	r.Empty(rs)
}

func TestSegmentsNormalizeIndependently(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for range 2000 {
		s := randomString(rng, 12)
		for _, f := range forms {
			var joined, normalized strings.Builder
			for segment := range f.Segments(s) {
				joined.WriteString(segment)
				normalized.WriteString(f.String(segment))
			}
			require.Equal(t, s, joined.String())
			require.Equal(t, f.String(s), normalized.String(), "%s %+q", f.Name(), s)
		}
	}
}
