// Package node defines the three Modified Merkle Patricia Trie node
// shapes — Branch, Extension, Leaf — as a closed, tagged sum dispatched
// by Kind, per spec.md §3 and §9 ("tagged variant instead of
// inheritance").
package node

import (
	"github.com/lucidchain/mmpt/arena"
	"github.com/lucidchain/mmpt/nibble"
)

// Handle references a Node stored in a trie's arena.
type Handle = arena.Handle

// Null is the handle denoting "no child."
const Null = arena.Null

// Kind tags which of the three node shapes a Node holds.
type Kind uint8

const (
	// KindLeaf holds a terminal entry: path_suffix and a value.
	KindLeaf Kind = iota
	// KindExtension holds a shared nibble prefix over a single Branch child.
	KindExtension
	// KindBranch holds 16 nibble-indexed children plus an optional value.
	KindBranch
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindExtension:
		return "Extension"
	case KindBranch:
		return "Branch"
	default:
		return "Unknown"
	}
}

// Node is one node of the trie. Exactly the fields relevant to Kind
// are meaningful; this mirrors spec.md's closed three-variant sum
// without needing per-variant Go types, since every trie algorithm
// dispatches on Kind anyway (spec.md §9).
//
// Dirty marks that Encoding/Digest below are stale. Because the trie
// package never mutates a node in place — any change allocates a
// fresh arena slot and frees the old one (spec.md §3 "Lifecycle") —
// every node on a mutated spine is, by construction, a brand new Node
// with Dirty set true, and every node off the spine keeps its old
// handle and whatever cache it already had. No separate "mark every
// ancestor dirty" pass is needed (spec.md §9).
type Node struct {
	Kind Kind

	// Leaf: the nibbles remaining after the descent prefix. Extension:
	// the shared nibble segment (always non-empty, per I2). Branch: unused.
	Path nibble.Path

	// Leaf: the stored value. Branch: the value at this node's own key,
	// nil if absent. Extension: unused.
	Value []byte

	// Extension: the single Branch child. Branch: 16 nibble-indexed
	// children, Null where absent. Leaf: unused.
	Children [16]Handle
	Child    Handle

	Dirty bool

	// Encoding caches this node's canonical RLP encoding (spec.md
	// §4.4); HasEncoding reports whether it is populated and current.
	Encoding    []byte
	HasEncoding bool

	// Digest caches the 32-byte digest of Encoding, when Encoding is
	// long enough to need one (>=32 bytes); HasDigest reports whether
	// it is populated and current.
	Digest    [32]byte
	HasDigest bool
}

// NewLeaf constructs a Leaf node with the given path suffix and value.
// The value is copied so the node does not alias caller-owned memory.
func NewLeaf(suffix nibble.Path, value []byte) Node {
	return Node{
		Kind:  KindLeaf,
		Path:  nibble.Clone(suffix),
		Value: append([]byte(nil), value...),
		Dirty: true,
	}
}

// NewExtension constructs an Extension node over a non-empty segment
// pointing at a Branch child.
func NewExtension(segment nibble.Path, child Handle) Node {
	if len(segment) == 0 {
		panic("node: Extension with empty path_segment violates I2")
	}
	return Node{
		Kind:  KindExtension,
		Path:  nibble.Clone(segment),
		Child: child,
		Dirty: true,
	}
}

// NewBranch constructs an empty Branch (no children, no value). The
// caller is responsible for populating it such that I3 holds before
// the branch becomes reachable from the root.
func NewBranch() Node {
	return Node{Kind: KindBranch, Dirty: true}
}

// HasValue reports whether a Branch (or Leaf, trivially) carries a
// terminal value.
func (n *Node) HasValue() bool {
	return n.Value != nil
}

// Occupants counts a Branch's non-empty children plus its value, the
// quantity I3 requires to stay >= 2. Only meaningful for KindBranch.
func (n *Node) Occupants() int {
	count := 0
	if n.Value != nil {
		count++
	}
	for _, c := range n.Children {
		if c != Null {
			count++
		}
	}
	return count
}

// SoleChildNibble returns the nibble index of a Branch's one non-Null
// child and true, assuming Occupants()==1 and that occupant is a
// child rather than the value. Only meaningful for KindBranch.
func (n *Node) SoleChildNibble() (int, bool) {
	for i, c := range n.Children {
		if c != Null {
			return i, true
		}
	}
	return 0, false
}
