package runenorm

import "fmt"

const (
	// maxNonStarters is the longest run of non-starters allowed by the
	// Stream-Safe Text Format.
	maxNonStarters = 30

	// maxDecomposition is the longest full decomposition of a single code
	// point (U+FDFA under NFKD).
	maxDecomposition = 18

	// maxStarters is the number of buffered starters beyond which a newly
	// appended starter always becomes a flush boundary. Three would likely
	// suffice; four is kept as the conservative bound.
	maxStarters = 4

	// bufferCap is the fixed capacity of the working buffer.
	bufferCap = 70
)

// entry is a buffered code point tagged with its combining class.
type entry struct {
	r   rune
	ccc uint8
}

// workingBuffer is the bounded store of a normalization session. Entries
// are only ever appended at the end and removed from the front.
type workingBuffer struct {
	e        [bufferCap]entry
	n        int // entries in use
	starters int // entries in use with ccc == 0
	high     int // high-water mark of n
}

// push appends e. Exceeding the capacity is an internal invariant
// violation; the engine checks for room before decomposing.
func (b *workingBuffer) push(e entry) {
	if b.n >= bufferCap {
		panic(AssertError(fmt.Sprintf("working buffer overflow at %U", e.r)))
	}
	b.e[b.n] = e
	b.n++
	if e.ccc == cccStarter {
		b.starters++
	}
	if b.n > b.high {
		b.high = b.n
	}
}

// prefix returns the first n entries for in-place processing.
func (b *workingBuffer) prefix(n int) []entry {
	return b.e[:n]
}

// shift drops the first n entries and moves the rest to the front.
func (b *workingBuffer) shift(n int) {
	if n < 0 || n > b.n {
		panic(AssertError(fmt.Sprintf("flush cursor %d outside buffer of %d entries", n, b.n)))
	}
	b.n = copy(b.e[:], b.e[n:b.n])
	b.starters = 0
	for _, e := range b.e[:b.n] {
		if e.ccc == cccStarter {
			b.starters++
		}
	}
}

// reset empties the buffer. The high-water mark is kept.
func (b *workingBuffer) reset() {
	b.n = 0
	b.starters = 0
}
