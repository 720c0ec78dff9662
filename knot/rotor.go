package knot

import "fmt"

// Rotor is the mutable ring behind the Knot Hash.
// seq always holds a permutation of 0..n-1; scratch is the snapshot buffer
// used by apply so the window is read in full before any value is written.
type Rotor struct {
	seq     []int
	scratch []int
	cursor  int
	skip    int
}

// NewRotor returns a Rotor over the ring [0, 1, …, n-1] with cursor and skip at 0.
// Returns ErrRingSize if n < 1.
// Complexity: O(n) time and memory.
func NewRotor(n int) (*Rotor, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewRotor(%d): %w", n, ErrRingSize)
	}
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}

	return &Rotor{seq: seq, scratch: make([]int, n)}, nil
}

// Len returns the ring size n.
func (r *Rotor) Len() int { return len(r.seq) }

// Cursor returns the current position, always in [0, n).
func (r *Rotor) Cursor() int { return r.cursor }

// Skip returns the number of Apply calls performed so far.
func (r *Rotor) Skip() int { return r.skip }

// Sequence returns a copy of the ring in index order.
func (r *Rotor) Sequence() []int {
	out := make([]int, len(r.seq))
	copy(out, r.seq)

	return out
}

// Checksum returns the product of the first two ring values.
// It is the single-round check value; a ring shorter than 2 yields 0.
func (r *Rotor) Checksum() int {
	if len(r.seq) < 2 {
		return 0
	}

	return r.seq[0] * r.seq[1]
}

// Apply reverses the length values starting at the cursor (wrapping around
// the end of the ring), then advances the cursor by length+skip and
// increments skip. A zero length only advances.
//
// Returns ErrLengthOutOfRange, leaving the Rotor untouched, when length is
// negative or greater than the ring size: past that bound the window would
// overlap itself and stop being a reversal.
// Complexity: O(length).
func (r *Rotor) Apply(length int) error {
	if err := r.checkLength(length); err != nil {
		return err
	}
	r.apply(length)

	return nil
}

// RunRound applies every length in order. All lengths are validated first,
// so a bad list never leaves the Rotor half-way through a round.
func (r *Rotor) RunRound(lengths []int) error {
	for _, l := range lengths {
		if err := r.checkLength(l); err != nil {
			return err
		}
	}
	r.round(lengths)

	return nil
}

// RunRounds runs count rounds over lengths. Cursor and skip carry over from
// one round to the next.
// Complexity: O(count × Σlengths).
func (r *Rotor) RunRounds(lengths []int, count int) error {
	if count < 0 {
		return fmt.Errorf("RunRounds(count=%d): %w", count, ErrRoundCount)
	}
	for _, l := range lengths {
		if err := r.checkLength(l); err != nil {
			return err
		}
	}
	for i := 0; i < count; i++ {
		r.round(lengths)
	}

	return nil
}

func (r *Rotor) checkLength(length int) error {
	if length < 0 || length > len(r.seq) {
		return fmt.Errorf("length %d with ring size %d: %w", length, len(r.seq), ErrLengthOutOfRange)
	}

	return nil
}

func (r *Rotor) round(lengths []int) {
	for _, l := range lengths {
		r.apply(l)
	}
}

// apply assumes 0 <= length <= n.
func (r *Rotor) apply(length int) {
	n := len(r.seq)
	window := r.scratch[:length]
	for i := range window {
		window[i] = r.seq[(r.cursor+i)%n]
	}
	for i := range window {
		r.seq[(r.cursor+i)%n] = window[length-1-i]
	}
	// skip is reduced before the add so the cursor sum cannot overflow on long runs.
	r.cursor = (r.cursor + length + r.skip%n) % n
	r.skip++
}
