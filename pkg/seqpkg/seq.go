// Package seqpkg provides monotonic number allocation for customer IDs
// and account numbers.
package seqpkg

// Sequence mints monotonically increasing numbers. It never reissues a
// number and its watermark never decreases.
type Sequence struct {
	last int
}

// New returns a Sequence whose first minted number is 0.
func New() *Sequence {
	return &Sequence{last: -1}
}

// Observe raises the watermark to n if n exceeds it. Called for every
// number loaded from an external source.
func (s *Sequence) Observe(n int) {
	if n > s.last {
		s.last = n
	}
}

// Next mints the next number.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Last returns the highest number issued or observed so far.
func (s *Sequence) Last() int {
	return s.last
}
