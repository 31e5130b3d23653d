package trie

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// KV is a key/value pair for InsertAll.
type KV struct {
	Key   []byte
	Value []byte
}

// InsertAll applies Insert to every pair in sequence. It has no effect
// on the order-independence property of root hashes (spec.md §8) —
// it is sequential sugar over repeated Insert calls, aggregating any
// per-key EncodingFailures rather than stopping at the first.
func (t *Trie) InsertAll(pairs []KV) error {
	var errs []error
	for _, kv := range pairs {
		if _, err := t.Insert(kv.Key, kv.Value); err != nil {
			errs = append(errs, fmt.Errorf("insert %x: %w", kv.Key, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &multierror.Error{Errors: errs}
}

// RemoveAll applies Remove to every key in sequence. ErrNotFound is
// not aggregated as a failure, since removing an absent key is a
// defined no-op (spec.md §4.3), not an error condition.
func (t *Trie) RemoveAll(keys [][]byte) error {
	var errs []error
	for _, k := range keys {
		if _, err := t.Remove(k); err != nil && !errors.Is(err, ErrNotFound) {
			errs = append(errs, fmt.Errorf("remove %x: %w", k, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &multierror.Error{Errors: errs}
}
