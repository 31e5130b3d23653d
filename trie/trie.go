// Package trie implements an in-memory Ethereum-style Modified Merkle
// Patricia Trie: an authenticated map from byte-string keys to
// byte-string values whose root commitment is computed deterministically
// from the tree's contents via Ethereum's canonical node encoding.
//
// The algorithmic core (nibble paths, the node arena, the three node
// variants, structural insert/remove, and canonical encoding/hashing)
// lives here and in the nibble, arena, and node packages. Persistent
// storage, network protocols, proof generation, and concurrent
// mutation are out of scope, per spec.md §1.
package trie

import (
	"go.uber.org/zap"

	"github.com/lucidchain/mmpt/arena"
	"github.com/lucidchain/mmpt/capability"
	"github.com/lucidchain/mmpt/nibble"
	"github.com/lucidchain/mmpt/node"
)

// Trie is a single-writer, in-memory Modified Merkle Patricia Trie.
// The zero value is not usable; construct one with New.
type Trie struct {
	arena *arena.Arena[node.Node]
	root  node.Handle

	keyEnc capability.KeyEncoder
	valEnc capability.ValueEncoder
	digest capability.Digest
	logger *zap.Logger
}

// Options configures a Trie's external collaborators (spec.md §4.5).
// Every field is optional; zero values fall back to the Ethereum-
// canonical defaults.
type Options struct {
	// KeyEncoder transforms caller keys before they are walked as
	// nibble paths. Defaults to capability.IdentityKeyEncoder.
	KeyEncoder capability.KeyEncoder
	// ValueEncoder is consulted only by InsertValue, the convenience
	// entry point for structured values; Insert/Get/Remove
	// operate on raw bytes directly. Defaults to
	// capability.IdentityValueEncoder.
	ValueEncoder capability.ValueEncoder
	// Digest computes node hashes. Defaults to capability.Keccak256Digest.
	Digest capability.Digest
	// Logger receives a structured event immediately before a fatal
	// InvariantViolation panic. Defaults to a no-op logger.
	Logger *zap.Logger
}

// New returns an empty trie (a Null root, per I6).
func New(opts Options) *Trie {
	t := &Trie{
		arena:  arena.New[node.Node](),
		root:   node.Null,
		keyEnc: opts.KeyEncoder,
		valEnc: opts.ValueEncoder,
		digest: opts.Digest,
		logger: opts.Logger,
	}
	if t.keyEnc == nil {
		t.keyEnc = capability.IdentityKeyEncoder{}
	}
	if t.valEnc == nil {
		t.valEnc = capability.IdentityValueEncoder{}
	}
	if t.digest == nil {
		t.digest = capability.Keccak256Digest{}
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}
	return t
}

// IsEmpty reports whether the trie holds no entries (I6: an empty
// trie has a Null root).
func (t *Trie) IsEmpty() bool {
	return t.root == node.Null
}

// Len reports the number of live nodes in the underlying arena. This
// is a structural size (leaves, extensions, and branches together),
// not the number of stored keys.
func (t *Trie) Len() int {
	return t.arena.Len()
}

func (t *Trie) free(h node.Handle) {
	if h != node.Null {
		t.arena.Remove(h)
	}
}

func (t *Trie) allocLeaf(suffix nibble.Path, value []byte) node.Handle {
	return t.arena.Insert(node.NewLeaf(suffix, value))
}

func (t *Trie) raiseInvariant(detail string) {
	t.logger.Error("mmpt invariant violation", zap.String("detail", detail))
	panic(&InvariantViolation{Detail: detail})
}
