package knot

import (
	"fmt"
	"strconv"
	"strings"
)

var suffix = [...]int{17, 31, 73, 47, 23}

// Suffix returns a copy of the lengths appended to every text-derived length list.
func Suffix() []int {
	out := make([]int, len(suffix))
	copy(out, suffix[:])

	return out
}

// ParseLengths reads a comma-separated list of non-negative decimal integers.
// Surrounding whitespace, of the input and of each token, is ignored.
// Any other token (empty, signed, non-decimal, too large) yields a *ParseError.
//
// Example:
//
//	ParseLengths("3,4,1,5") // []int{3, 4, 1, 5}
func ParseLengths(input string) ([]int, error) {
	tokens := strings.Split(strings.TrimSpace(input), ",")
	out := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseUint(tok, 10, 31)
		if err != nil {
			return nil, &ParseError{Index: i, Token: tok, Err: err}
		}
		out = append(out, int(v))
	}

	return out, nil
}

// TextLengths maps each byte of the trimmed text to its value and appends Suffix().
//
// Example:
//
//	TextLengths("1,2,3") // []int{49, 44, 50, 44, 51, 17, 31, 73, 47, 23}
func TextLengths(text string) []int {
	text = strings.TrimSpace(text)
	out := make([]int, 0, len(text)+len(suffix))
	for i := 0; i < len(text); i++ {
		out = append(out, int(text[i]))
	}

	return append(out, suffix[:]...)
}

// ChecksumAfterOneRound runs a single round of lengths over a ring of n and
// returns the product of its first two values.
// Returns ErrRingSize if n < 2, ErrLengthOutOfRange if a length exceeds n.
func ChecksumAfterOneRound(lengths []int, n int) (int, error) {
	if n < 2 {
		return 0, fmt.Errorf("ChecksumAfterOneRound(n=%d): %w", n, ErrRingSize)
	}
	r, err := NewRotor(n)
	if err != nil {
		return 0, err
	}
	if err = r.RunRound(lengths); err != nil {
		return 0, err
	}

	return r.Checksum(), nil
}

// ChecksumFromList parses a numeric length list and returns its single-round
// checksum over a ring of Size.
func ChecksumFromList(input string) (int, error) {
	lengths, err := ParseLengths(input)
	if err != nil {
		return 0, err
	}

	return ChecksumAfterOneRound(lengths, Size)
}
