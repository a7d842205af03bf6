package runenorm

import (
	"fmt"
	"unicode/utf8"
)

// cgj is U+034F COMBINING GRAPHEME JOINER, inserted to break overlong runs
// of non-starters in stream-safe mode.
const cgj = '\u034F'

// Normalizer is a streaming normalization session. Code points are fed one
// at a time with [Normalizer.Push] and the session is drained with
// [Normalizer.Finish]. Output is identical to whole-string normalization for
// all input in Stream-Safe Text Format, using a fixed amount of memory.
//
// A Normalizer must not be used concurrently. The zero value is not usable;
// create sessions with [NewNormalizer].
type Normalizer struct {
	form Form
	pol  policy
	t    *propertyTable

	buf workingBuffer

	// The fast path holds a single starter with a "Yes" quick check while
	// the buffer is empty.
	pending    rune
	hasPending bool

	ss         uint8 // non-starters since the last starter
	streamSafe bool

	scratch [maxDecomposition]entry
}

// NewNormalizer returns a new session normalizing to form f.
func NewNormalizer(f Form) *Normalizer {
	n := new(Normalizer)
	n.init(f)
	return n
}

func (n *Normalizer) init(f Form) {
	n.form = f
	n.pol = f.policy()
	n.t = tables()
}

// NewNormalizer returns a new session normalizing to f.
func (f Form) NewNormalizer() *Normalizer {
	return NewNormalizer(f)
}

// Form returns the normalization form of the session.
func (n *Normalizer) Form() Form {
	return n.form
}

// HighWater returns the largest number of entries the working buffer has
// held since the session was created or last reset.
func (n *Normalizer) HighWater() int {
	return n.buf.high
}

// SetStreamSafe controls what happens when a run of more than 30
// non-starters is cut. By default the run is only split into separately
// normalized parts. With stream-safe mode enabled a U+034F COMBINING
// GRAPHEME JOINER is inserted at the cut, which turns the output into
// Stream-Safe Text Format as UAX #15 prescribes.
//
// Normalizing the output again yields the same code points only when the
// input had no overlong run or stream-safe mode is on. The whole-input
// functions such as [Form.String] always use the default.
func (n *Normalizer) SetStreamSafe(on bool) {
	n.streamSafe = on
}

// Reset discards all buffered input and starts a new session.
func (n *Normalizer) Reset() {
	n.buf.reset()
	n.buf.high = 0
	n.hasPending = false
	n.ss = 0
}

// Push feeds r to the session and appends any code points that became final
// to dst. Invalid code points are replaced with U+FFFD.
func (n *Normalizer) Push(dst []rune, r rune) []rune {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	p := n.t.lookup(r)

	if int(n.ss)+int(p.lead) > maxNonStarters {
		dst = n.flush(dst)
		if n.streamSafe {
			dst = append(dst, cgj)
		}
		n.ss = 0
	}
	if p.lead == 0 {
		n.ss = p.trail
	} else {
		n.ss += p.lead
	}

	if p.ccc == cccStarter && p.yes(n.pol.qc) {
		// Nothing before r can interact with r or anything after it.
		dst = n.flush(dst)
		n.pending, n.hasPending = r, true
		return dst
	}

	if n.hasPending {
		n.hasPending = false
		dst = n.insert(dst, n.pending, n.t.lookup(n.pending))
	}
	return n.insert(dst, r, p)
}

// Finish appends everything still buffered to dst and resets the session.
// The high-water mark is kept.
func (n *Normalizer) Finish(dst []rune) []rune {
	dst = n.flush(dst)
	n.ss = 0
	return dst
}

// flush turns the whole buffer and emits the pending code point.
func (n *Normalizer) flush(dst []rune) []rune {
	if n.buf.n > 0 {
		dst = n.turn(dst, n.buf.n)
	}
	if n.hasPending {
		dst = append(dst, n.pending)
		n.hasPending = false
	}
	return dst
}

// insert decomposes r into the buffer, turning the buffer whenever one of
// the decomposed code points starts a new independent segment.
func (n *Normalizer) insert(dst []rune, r rune, p props) []rune {
	dec := n.t.decompose(n.scratch[:0], r, p, n.pol.compat)
	if n.buf.n+len(dec) > bufferCap {
		dst = n.overflow(dst, r)
	}
	for _, e := range dec {
		if e.ccc == cccStarter && n.buf.n > 0 &&
			(n.buf.starters >= maxStarters || n.t.lookup(e.r).yes(n.pol.qc)) {

			dst = n.turn(dst, n.buf.n)
		}
		n.buf.push(e)
	}
	return dst
}

// turn normalizes the first end entries of the buffer, appends them to dst
// and moves the remaining entries to the front.
func (n *Normalizer) turn(dst []rune, end int) []rune {
	seg := n.buf.prefix(end)
	canonicalOrder(seg)
	if n.pol.compose {
		n.t.compose(seg)
	}
	for _, e := range seg {
		if e.ccc != cccConsumed {
			dst = append(dst, e.r)
		}
	}
	n.buf.shift(end)
	return dst
}

// overflow handles a decomposition of r that does not fit in the buffer.
// Stream-safe counting makes this unreachable for valid tables.
func (n *Normalizer) overflow(dst []rune, r rune) []rune {
	msg := fmt.Sprintf("%d buffered entries leave no room for the "+
		"decomposition of %U", n.buf.n, r)
	if assertInvariants {
		panic(AssertError(msg))
	}
	log.Errorf("Working buffer full, forcing a flush: %s", msg)
	return n.turn(dst, n.buf.n)
}
