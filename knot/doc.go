// Package knot implements the Knot Hash: a circular-buffer rolling hash that
// scrambles a ring of integers through repeated partial reversals and folds
// the result into a 16-byte digest.
//
// What:
//
//   - Rotor owns a ring of n values (0..n-1), a cursor and a skip size.
//     Apply(length) reverses the circular window [cursor, cursor+length)
//     and moves the cursor forward by length+skip.
//   - SparseToDense XOR-folds a 256-element ring into 16 bytes.
//   - DigestFromLengths / DigestFromText run 64 rounds over a ring of 256.
//   - ParseLengths and TextLengths derive length lists from puzzle input.
//
// Rounds:
//
//	cursor and skip are NOT reset between rounds. A round is one pass over
//	the whole length list; the digest runs Rounds (64) of them back to back.
//
// Complexity:
//
//   - Apply:             O(length) time (window snapshot), O(n) memory per Rotor.
//   - DigestFromLengths: O(Rounds × Σlengths) time.
//
// Errors:
//
//   - ErrRingSize:         ring too small (below 1, or below 2 for a checksum).
//   - ErrLengthOutOfRange: a length is negative or larger than the ring.
//   - ErrRoundCount:       negative round count.
//   - ErrSparseLength:     sparse ring is not exactly Size elements.
//   - ErrDigestFormat:     malformed hex digest.
//   - ErrParse (*ParseError): a numeric length list token is invalid.
//
// The hash is not cryptographic. Every call owns its own Rotor, so separate
// digests may be computed from separate goroutines without locking.
package knot
