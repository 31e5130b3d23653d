package trie

import (
	"errors"

	"github.com/lucidchain/mmpt/nibble"
)

// Insert adds key->value to the trie, returning the previous value if
// key was already present (nil otherwise). Per spec.md §4.3, overwrite
// and structural insertion are both "insert"; there is no separate
// overwrite API.
//
// A zero-length value is treated as an implicit Remove, matching
// go-ethereum's own Trie.Update: storing an empty "bytes" value in a
// Branch's own value slot is indistinguishable from "no value" there
// (node.Node.HasValue/Occupants, trie/get.go's Branch case all treat
// Value == nil as absent), so allowing it through insertAt would let a
// key silently vanish from Get the moment a later insert forced it into
// a Branch's value slot. Routing it through Remove instead keeps the
// trie's own invariants (I3 in particular) true immediately after every
// Insert call.
func (t *Trie) Insert(key, value []byte) ([]byte, error) {
	if len(value) == 0 {
		prev, err := t.Remove(key)
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return prev, err
	}

	encKey, err := t.keyEnc.EncodeKey(key)
	if err != nil {
		return nil, &EncodingFailure{Op: "key", Err: err}
	}
	path := nibble.FromBytes(encKey)
	newRoot, changed, prev, err := t.insertAt(t.root, path, value)
	if err != nil {
		return nil, err
	}
	if changed {
		t.root = newRoot
	}
	return prev, nil
}

// InsertValue encodes value via the configured ValueEncoder and
// inserts it under key, for callers whose values are not already raw
// bytes (e.g. using capability.CBORValueEncoder).
func (t *Trie) InsertValue(key []byte, value any) ([]byte, error) {
	encVal, err := t.valEnc.EncodeValue(value)
	if err != nil {
		return nil, &EncodingFailure{Op: "value", Err: err}
	}
	return t.Insert(key, encVal)
}

// Get returns the value stored under key, or ErrNotFound if absent.
func (t *Trie) Get(key []byte) ([]byte, error) {
	encKey, err := t.keyEnc.EncodeKey(key)
	if err != nil {
		return nil, &EncodingFailure{Op: "key", Err: err}
	}
	path := nibble.FromBytes(encKey)
	value, found, err := t.getAt(t.root, path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return value, nil
}

// Remove deletes key from the trie with path contraction (spec.md
// §4.3), returning the removed value, or ErrNotFound if key was
// absent (a no-op that leaves the trie unchanged).
func (t *Trie) Remove(key []byte) ([]byte, error) {
	encKey, err := t.keyEnc.EncodeKey(key)
	if err != nil {
		return nil, &EncodingFailure{Op: "key", Err: err}
	}
	path := nibble.FromBytes(encKey)
	newRoot, prev, found, err := t.removeAt(t.root, path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	t.root = newRoot
	return prev, nil
}
