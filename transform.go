package runenorm

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer normalizes UTF-8 text as a [transform.Transformer]. Output
// that does not fit into dst is kept and delivered by the next call, so any
// destination size works. Ill-formed UTF-8 is replaced with U+FFFD.
//
// A Transformer must not be used concurrently.
type Transformer struct {
	n    Normalizer
	out  []rune
	pend []byte // encoded output not yet delivered
}

var _ transform.Transformer = (*Transformer)(nil)

// Transformer returns a new stateful transformer normalizing to f.
func (f Form) Transformer() *Transformer {
	t := &Transformer{out: make([]rune, 0, bufferCap+2)}
	t.n.init(f)
	return t
}

// Reader returns a reader yielding f applied to the contents of r.
func (f Form) Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, f.Transformer())
}

// Writer returns a writer normalizing everything written to it to f before
// passing it to w. Close must be called to flush the final segment.
func (f Form) Writer(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, f.Transformer())
}

// SetStreamSafe enables the insertion of U+034F COMBINING GRAPHEME JOINER
// into overlong runs of non-starters, see [Normalizer.SetStreamSafe].
func (t *Transformer) SetStreamSafe(on bool) {
	t.n.SetStreamSafe(on)
}

// Reset implements the [transform.Transformer] interface.
func (t *Transformer) Reset() {
	t.n.Reset()
	t.pend = t.pend[:0]
}

// Transform implements the [transform.Transformer] interface.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(t.pend) > 0 {
		nDst = copy(dst, t.pend)
		t.pend = t.pend[:copy(t.pend, t.pend[nDst:])]
		if len(t.pend) > 0 {
			return nDst, 0, transform.ErrShortDst
		}
	}

	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		nSrc += size
		t.out = t.n.Push(t.out[:0], r)
		if nDst = t.emit(dst, nDst); len(t.pend) > 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
	}

	if atEOF {
		t.out = t.n.Finish(t.out[:0])
		if nDst = t.emit(dst, nDst); len(t.pend) > 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
	}
	return nDst, nSrc, nil
}

// emit encodes t.out into dst starting at nDst. Whatever does not fit is
// moved to t.pend.
func (t *Transformer) emit(dst []byte, nDst int) int {
	for i, r := range t.out {
		if nDst+utf8.RuneLen(r) > len(dst) {
			t.pend = appendUTF8(t.pend, t.out[i:])
			break
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
	}
	return nDst
}
