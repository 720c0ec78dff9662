// Package knotgrid is a small toolkit around the Knot Hash, a circular-buffer
// rolling hash built from repeated partial reversals of a ring of integers.
//
// Under the hood, everything is organized under three subpackages:
//
//	knot/      — Rotor, 64-round digest, sparse→dense fold, length-list parsing
//	gridgraph/ — connected regions of a 2D grid (BFS, Conn4/Conn8)
//	diskgrid/  — 128×128 disk map hashed from a key; used squares & regions
//
// and one command:
//
//	cmd/knothash — checksum / hash / grid from the terminal, TOML config,
//	               interactive map viewer
//
// Quick example:
//
//	knot.DigestFromText("AoC 2017").Hex() // "33efeb34ea91902bb2f59c9920caa6cd"
//
// The hash is deterministic and stateless between calls, but it is not
// cryptographic.
//
//	go get github.com/katalvlaran/knotgrid
package knotgrid
