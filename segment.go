package runenorm

import (
	"iter"
	"unicode/utf8"
)

// FirstSegment returns the first normalization segment found in the given
// byte slice. A segment ends right before the next code point that starts
// an independent segment for f: a starter with a "Yes" quick check that
// never combines with anything before it. Segments can therefore be
// normalized separately:
//
//	f(b) == f(segment) + f(rest)
//
// holds for input in Stream-Safe Text Format. This function can be called
// continuously to extract all segments from a byte slice, as illustrated in
// the example below.
//
// The "rest" slice is the sub-slice of the original byte slice "b" starting
// after the last byte of the identified segment. If the length of the "rest"
// slice is 0, the entire byte slice "b" has been processed. Given an empty
// byte slice "b", the function returns nil values.
//
// Ill-formed UTF-8 is treated as U+FFFD, which always starts a segment.
func (f Form) FirstSegment(b []byte) (segment, rest []byte) {
	if len(b) == 0 {
		return
	}
	t, qc := tables(), f.policy().qc
	_, length := utf8.DecodeRune(b)
	for length < len(b) {
		r, l := utf8.DecodeRune(b[length:])
		if t.lookup(r).boundaryBefore(qc) {
			return b[:length], b[length:]
		}
		length += l
	}
	return b, nil
}

// FirstSegmentInString is like [Form.FirstSegment] but its input and outputs
// are strings.
func (f Form) FirstSegmentInString(str string) (segment, rest string) {
	if len(str) == 0 {
		return
	}
	t, qc := tables(), f.policy().qc
	_, length := utf8.DecodeRuneInString(str)
	for length < len(str) {
		r, l := utf8.DecodeRuneInString(str[length:])
		if t.lookup(r).boundaryBefore(qc) {
			return str[:length], str[length:]
		}
		length += l
	}
	return str, ""
}

// Segments returns an iterator over the normalization segments of str, see
// [Form.FirstSegment].
func (f Form) Segments(str string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(str) > 0 {
			var segment string
			segment, str = f.FirstSegmentInString(str)
			if !yield(segment) {
				return
			}
		}
	}
}
