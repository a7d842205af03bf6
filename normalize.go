package runenorm

import (
	"iter"
	"slices"
	"unicode/utf8"
)

// Runes returns f(rs) in a newly allocated slice. Invalid code points are
// replaced with U+FFFD.
func (f Form) Runes(rs []rune) []rune {
	return f.AppendRunes(make([]rune, 0, len(rs)), rs...)
}

// AppendRunes appends f(rs) to dst and returns the extended slice.
func (f Form) AppendRunes(dst []rune, rs ...rune) []rune {
	if f.QuickCheckRunes(rs) == Yes {
		return append(dst, rs...)
	}
	var n Normalizer
	n.init(f)
	for _, r := range rs {
		dst = n.Push(dst, r)
	}
	return n.Finish(dst)
}

// String returns f(s). Ill-formed UTF-8 is replaced with U+FFFD. If s is
// already known to be in the form it is returned as is.
func (f Form) String(s string) string {
	if f.QuickCheckString(s) == Yes {
		return s
	}
	return string(appendNormalized(f, make([]byte, 0, len(s)+len(s)/4), s))
}

// Bytes returns f(b). Ill-formed UTF-8 is replaced with U+FFFD. If b is
// already known to be in the form it is returned as is.
func (f Form) Bytes(b []byte) []byte {
	if f.QuickCheck(b) == Yes {
		return b
	}
	return appendNormalized(f, make([]byte, 0, len(b)+len(b)/4), b)
}

// AppendString appends the UTF-8 encoding of f(s) to dst and returns the
// extended slice.
func (f Form) AppendString(dst []byte, s string) []byte {
	if f.QuickCheckString(s) == Yes {
		return append(dst, s...)
	}
	return appendNormalized(f, dst, s)
}

func appendNormalized[S ~string | ~[]byte](f Form, dst []byte, s S) []byte {
	var (
		n       Normalizer
		scratch [bufferCap + 2]rune
	)
	n.init(f)
	out := scratch[:0]
	for _, r := range string(s) {
		out = n.Push(out[:0], r)
		dst = appendUTF8(dst, out)
	}
	return appendUTF8(dst, n.Finish(out[:0]))
}

func appendUTF8(dst []byte, rs []rune) []byte {
	for _, r := range rs {
		dst = utf8.AppendRune(dst, r)
	}
	return dst
}

// All returns a sequence yielding f(seq). Code points are produced as soon
// as they are final, and iteration of seq stops when the consumer stops.
func (f Form) All(seq iter.Seq[rune]) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		n := NewNormalizer(f)
		var out []rune
		for r := range seq {
			out = n.Push(out[:0], r)
			for _, x := range out {
				if !yield(x) {
					return
				}
			}
		}
		for _, x := range n.Finish(out[:0]) {
			if !yield(x) {
				return
			}
		}
	}
}

// IsNormal reports whether the UTF-8 encoded b is in form f. Ill-formed
// input is never normal. Unlike [Form.QuickCheck] the answer is exact, at
// the cost of normalizing b when the quick check is inconclusive.
func (f Form) IsNormal(b []byte) bool {
	switch f.QuickCheck(b) {
	case Yes:
		return true
	case IllFormed:
		return false
	}
	return string(appendNormalized(f, nil, b)) == string(b)
}

// IsNormalString is like [Form.IsNormal] but its input is a string.
func (f Form) IsNormalString(s string) bool {
	switch f.QuickCheckString(s) {
	case Yes:
		return true
	case IllFormed:
		return false
	}
	return string(appendNormalized(f, nil, s)) == s
}

// IsNormalRunes is like [Form.IsNormal] but its input is a sequence of code
// points.
func (f Form) IsNormalRunes(rs []rune) bool {
	switch f.QuickCheckRunes(rs) {
	case Yes:
		return true
	case IllFormed:
		return false
	}
	return slices.Equal(f.AppendRunes(nil, rs...), rs)
}
