// Package nibble implements the nibble-path algebra the trie descends
// over: conversion between byte strings and 4-bit nibble sequences,
// common-prefix measurement, and the compact hex-prefix codec used to
// serialize a path into a node encoding.
package nibble

// Path is an ordered sequence of nibbles, one per byte of the slice,
// each in [0,15]. A Path is immutable from the caller's perspective;
// operations that would mutate it return a new slice.
type Path []byte

// FromBytes expands a byte string into its nibble path: high nibble
// first, then low nibble, per byte.
func FromBytes(key []byte) Path {
	out := make(Path, len(key)*2)
	for i, b := range key {
		out[i*2] = b >> 4
		out[i*2+1] = b & 0x0F
	}
	return out
}

// ToBytes packs a nibble path back into a byte string. The path must
// have even length; callers that may hold an odd-length suffix (hex-
// prefix leaf/extension segments) should go through the hexprefix
// codec instead of this function.
func ToBytes(p Path) []byte {
	out := make([]byte, len(p)/2)
	for i := range out {
		out[i] = p[i*2]<<4 | p[i*2+1]
	}
	return out
}

// CommonPrefixLen returns the length of the longest common prefix of
// a and b.
func CommonPrefixLen(a, b Path) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Equal reports whether two paths contain the same nibbles in the
// same order.
func Equal(a, b Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Concat returns a freshly allocated path containing a followed by b.
// Neither input is aliased by the result.
func Concat(a, b Path) Path {
	out := make(Path, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// Clone returns a copy of p that shares no backing array with it.
func Clone(p Path) Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// String renders a path as its hex digits, for debugging.
func (p Path) String() string {
	b := make([]byte, len(p))
	for i, n := range p {
		if n < 10 {
			b[i] = '0' + n
		} else {
			b[i] = 'a' + (n - 10)
		}
	}
	return string(b)
}
