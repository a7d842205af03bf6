package runenorm

import "unicode/utf8"

// QuickCheckResult is the outcome of a normalization quick check.
type QuickCheckResult int

const (
	// Yes means the input is known to be in the form.
	Yes QuickCheckResult = iota

	// NotYes means the input may or may not be in the form. Use one of the
	// IsNormal functions or normalize to decide.
	NotYes

	// IllFormed means the input contains an invalid code point or an
	// invalid UTF-8 sequence.
	IllFormed
)

var quickCheckNames = [...]string{
	Yes:       "Yes",
	NotYes:    "NotYes",
	IllFormed: "IllFormed",
}

// String returns the name of the result.
func (r QuickCheckResult) String() string {
	if r < 0 || int(r) >= len(quickCheckNames) {
		return "QuickCheckResult(?)"
	}
	return quickCheckNames[r]
}

// detector runs the quick-check algorithm over a sequence of code points.
// It keeps the combining class of the previous code point and nothing else.
type detector struct {
	t    *propertyTable
	qc   uint8
	last uint8
}

func newDetector(f Form) detector {
	return detector{t: tables(), qc: f.policy().qc}
}

// next feeds a valid code point and reports whether the input still
// qualifies as "Yes".
func (d *detector) next(r rune) bool {
	p := d.t.lookup(r)
	if p.ccc != cccStarter && p.ccc < d.last || !p.yes(d.qc) {
		return false
	}
	d.last = p.ccc
	return true
}

// QuickCheck reports whether the UTF-8 encoded b is known to be in form f.
// The check is a single pass with constant state that stops at the first
// code point deciding the result, so ill-formed UTF-8 after a NotYes verdict
// goes unnoticed.
func (f Form) QuickCheck(b []byte) QuickCheckResult {
	d := newDetector(f)
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return IllFormed
		}
		i += size
		if !d.next(r) {
			return NotYes
		}
	}
	return Yes
}

// QuickCheckString is like [Form.QuickCheck] but its input is a string.
func (f Form) QuickCheckString(s string) QuickCheckResult {
	d := newDetector(f)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return IllFormed
		}
		i += size
		if !d.next(r) {
			return NotYes
		}
	}
	return Yes
}

// QuickCheckRunes is like [Form.QuickCheck] but its input is a sequence of
// code points. Surrogates and values beyond U+10FFFF are ill-formed.
func (f Form) QuickCheckRunes(rs []rune) QuickCheckResult {
	d := newDetector(f)
	for _, r := range rs {
		if !utf8.ValidRune(r) {
			return IllFormed
		}
		if !d.next(r) {
			return NotYes
		}
	}
	return Yes
}
