package knot

import (
	"encoding/hex"
	"fmt"
	"math/bits"
)

const (
	// Size is the ring size used by every production digest.
	Size = 256
	// Rounds is the number of full passes over the length list for a digest.
	Rounds = 64
	// BlockSize is the number of sparse values folded into one digest byte.
	BlockSize = 16
	// DigestSize is the digest length in bytes.
	DigestSize = Size / BlockSize
)

// Digest is the 16-byte dense Knot Hash.
type Digest [DigestSize]byte

// SparseToDense XOR-folds the sparse ring in consecutive blocks of BlockSize
// values, one byte per block, in block order. Values are masked to a byte.
// Returns ErrSparseLength unless len(sparse) == Size.
func SparseToDense(sparse []int) (Digest, error) {
	var d Digest
	if len(sparse) != Size {
		return d, fmt.Errorf("SparseToDense(len=%d): %w", len(sparse), ErrSparseLength)
	}
	for b := range d {
		block := sparse[b*BlockSize : (b+1)*BlockSize]
		acc := block[0]
		for _, v := range block[1:] {
			acc ^= v
		}
		d[b] = byte(acc & 0xff)
	}

	return d, nil
}

// DigestFromLengths runs Rounds rounds of lengths over a fresh ring of Size
// and returns the dense digest.
// Returns ErrLengthOutOfRange if any length is outside [0, Size].
func DigestFromLengths(lengths []int) (Digest, error) {
	r, _ := NewRotor(Size)
	if err := r.RunRounds(lengths, Rounds); err != nil {
		return Digest{}, err
	}

	return SparseToDense(r.seq)
}

// DigestFromText hashes text with the ASCII-suffix scheme (see TextLengths).
// Every byte is a valid length for a ring of Size, so it never fails.
//
// Example:
//
//	knot.DigestFromText("AoC 2017").Hex() // "33efeb34ea91902bb2f59c9920caa6cd"
func DigestFromText(text string) Digest {
	lengths := TextLengths(text)
	r, _ := NewRotor(Size)
	for i := 0; i < Rounds; i++ {
		r.round(lengths)
	}
	d, _ := SparseToDense(r.seq)

	return d
}

// ParseDigest decodes the canonical 32-character lowercase hex form.
// Uppercase digits are rejected so that ParseDigest(s).Hex() == s always holds.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != 2*DigestSize {
		return d, fmt.Errorf("ParseDigest(%q): %w", s, ErrDigestFormat)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return d, fmt.Errorf("ParseDigest(%q): %w", s, ErrDigestFormat)
		}
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, fmt.Errorf("ParseDigest(%q): %w", s, ErrDigestFormat)
	}

	return d, nil
}

// Hex returns the digest as 32 lowercase hex characters, two per byte.
func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

// String implements fmt.Stringer with the hex form.
func (d Digest) String() string { return d.Hex() }

// Equal reports whether the hex form of d is exactly s (case-sensitive).
func (d Digest) Equal(s string) bool { return d.Hex() == s }

// Bytes returns a copy of the digest bytes.
func (d Digest) Bytes() []byte {
	out := make([]byte, DigestSize)
	copy(out, d[:])

	return out
}

// Bit reports whether bit i is set, counting from the most significant bit
// of byte 0. Indices outside [0, 128) report false.
func (d Digest) Bit(i int) bool {
	if i < 0 || i >= DigestSize*8 {
		return false
	}

	return d[i/8]&(0x80>>(i%8)) != 0
}

// OnesCount returns the number of set bits across the digest.
func (d Digest) OnesCount() int {
	total := 0
	for _, b := range d {
		total += bits.OnesCount8(b)
	}

	return total
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}
