package knot

import (
	"errors"
	"fmt"
)

var (
	// ErrRingSize indicates a ring below the minimum size (1 for a Rotor, 2 for a checksum).
	ErrRingSize = errors.New("knot: ring size too small")
	// ErrLengthOutOfRange indicates a length is negative or exceeds the ring size.
	ErrLengthOutOfRange = errors.New("knot: length out of range")
	// ErrRoundCount indicates a negative number of rounds.
	ErrRoundCount = errors.New("knot: round count must be non-negative")
	// ErrSparseLength indicates the sparse ring does not hold exactly Size values.
	ErrSparseLength = errors.New("knot: sparse hash must have 256 elements")
	// ErrDigestFormat indicates a hex digest that is not 32 lowercase hex characters.
	ErrDigestFormat = errors.New("knot: malformed hex digest")
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("knot: invalid length list")
)

// ParseError reports a token of a numeric length list that is not a
// non-negative decimal integer.
type ParseError struct {
	Index int    // zero-based token position
	Token string // offending token, already trimmed
	Err   error  // underlying strconv error, may be nil
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("knot: token %d %q: %v", e.Index, e.Token, e.Err)
	}

	return fmt.Sprintf("knot: token %d %q is not a non-negative integer", e.Index, e.Token)
}

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrParse) match any *ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
