package main

import (
	"fmt"
	"strings"

	"github.com/lucidchain/mmpt/trie"
)

// parseKV turns "key=value" flag values into KV pairs, the shared
// input format for insert/get/remove/hash/audit.
func parseKV(raw []string) ([]trie.KV, error) {
	pairs := make([]trie.KV, 0, len(raw))
	for _, r := range raw {
		k, v, ok := strings.Cut(r, "=")
		if !ok {
			return nil, fmt.Errorf("mmpttool: %q is not in key=value form", r)
		}
		pairs = append(pairs, trie.KV{Key: []byte(k), Value: []byte(v)})
	}
	return pairs, nil
}

func buildTrie(raw []string) (*trie.Trie, error) {
	pairs, err := parseKV(raw)
	if err != nil {
		return nil, err
	}
	t := trie.New(trie.Options{Logger: logger})
	if err := t.InsertAll(pairs); err != nil {
		return nil, fmt.Errorf("mmpttool: building trie: %w", err)
	}
	return t, nil
}
