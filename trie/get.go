package trie

import (
	"github.com/lucidchain/mmpt/nibble"
	"github.com/lucidchain/mmpt/node"
)

// getAt implements spec.md §4.3's get(key) descent: Leaf matches the
// remaining path exactly or fails, Extension requires the remaining
// path to start with its segment, Branch consumes one nibble per
// level or returns its own value when the path is exhausted.
func (t *Trie) getAt(h node.Handle, key nibble.Path) (value []byte, found bool, err error) {
	if h == node.Null {
		return nil, false, nil
	}
	n := t.arena.Get(h)
	switch n.Kind {
	case node.KindLeaf:
		if nibble.Equal(n.Path, key) {
			return n.Value, true, nil
		}
		return nil, false, nil

	case node.KindExtension:
		if len(key) < len(n.Path) || !nibble.Equal(key[:len(n.Path)], n.Path) {
			return nil, false, nil
		}
		return t.getAt(n.Child, key[len(n.Path):])

	case node.KindBranch:
		if len(key) == 0 {
			if n.Value == nil {
				return nil, false, nil
			}
			return n.Value, true, nil
		}
		child := n.Children[key[0]]
		if child == node.Null {
			return nil, false, nil
		}
		return t.getAt(child, key[1:])

	default:
		t.raiseInvariant("unknown node kind during get")
		return nil, false, nil // unreachable
	}
}
