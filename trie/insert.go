package trie

import (
	"github.com/lucidchain/mmpt/nibble"
	"github.com/lucidchain/mmpt/node"
)

// insertAt implements spec.md §4.3's insert algorithm. It returns the
// (possibly new) handle for the subtree rooted here, whether that
// handle differs from h, and the previous value if this call
// overwrote one. Every replaced node's old handle is freed before
// returning, so a caller only ever needs to wire in the returned
// handle.
func (t *Trie) insertAt(h node.Handle, key nibble.Path, value []byte) (newH node.Handle, changed bool, prev []byte, err error) {
	if h == node.Null {
		return t.allocLeaf(key, value), true, nil, nil
	}

	n := t.arena.Get(h)
	switch n.Kind {
	case node.KindLeaf:
		return t.insertIntoLeaf(n, h, key, value)
	case node.KindExtension:
		return t.insertIntoExtension(n, h, key, value)
	case node.KindBranch:
		return t.insertIntoBranch(n, h, key, value)
	default:
		t.raiseInvariant("unknown node kind during insert")
		return h, false, nil, nil // unreachable
	}
}

// insertIntoLeaf is spec.md §4.3's "Leaf vs incoming path" case.
func (t *Trie) insertIntoLeaf(n node.Node, h node.Handle, key nibble.Path, value []byte) (node.Handle, bool, []byte, error) {
	existing := n.Path
	p := nibble.CommonPrefixLen(existing, key)

	if p == len(existing) && p == len(key) {
		// Identical suffix: overwrite by replacing the leaf with a fresh
		// one carrying the new value.
		prev := n.Value
		t.free(h)
		return t.allocLeaf(key, value), true, prev, nil
	}

	branch := node.NewBranch()
	switch {
	case p == len(existing):
		// existing's suffix is a strict prefix of key: it becomes the
		// branch's own value, key's tail becomes a new leaf child.
		branch.Value = append([]byte(nil), n.Value...)
		nb := key[p]
		branch.Children[nb] = t.allocLeaf(key[p+1:], value)

	case p == len(key):
		// key is a strict prefix of existing's suffix: symmetric case.
		branch.Value = append([]byte(nil), value...)
		nb := existing[p]
		branch.Children[nb] = t.allocLeaf(existing[p+1:], n.Value)

	default:
		// Neither is a prefix of the other: both become leaf children,
		// disambiguated by the nibble at position p.
		oldNb := existing[p]
		newNb := key[p]
		branch.Children[oldNb] = t.allocLeaf(existing[p+1:], n.Value)
		branch.Children[newNb] = t.allocLeaf(key[p+1:], value)
	}

	branchH := t.arena.Insert(branch)
	t.free(h)
	if p > 0 {
		return t.arena.Insert(node.NewExtension(key[:p], branchH)), true, nil, nil
	}
	return branchH, true, nil, nil
}

// insertIntoExtension is spec.md §4.3's "Extension vs incoming path" case.
func (t *Trie) insertIntoExtension(n node.Node, h node.Handle, key nibble.Path, value []byte) (node.Handle, bool, []byte, error) {
	seg := n.Path
	p := nibble.CommonPrefixLen(seg, key)

	if p == len(seg) {
		// Full match: descend into the child (always a Branch, per I1).
		newChildH, changed, prev, err := t.insertAt(n.Child, key[p:], value)
		if err != nil {
			return h, false, nil, err
		}
		if !changed {
			return h, false, prev, nil
		}
		newH := t.arena.Insert(node.NewExtension(seg, newChildH))
		t.free(h)
		return newH, true, prev, nil
	}

	// Partial match: split the extension at p.
	branch := node.NewBranch()
	oldNb := seg[p]
	oldRest := seg[p+1:]
	if len(oldRest) == 0 {
		// The old segment's tail is empty: attach the original Branch
		// child directly, no wrapping extension needed (I1 holds
		// trivially since it is already a Branch).
		branch.Children[oldNb] = n.Child
	} else {
		branch.Children[oldNb] = t.arena.Insert(node.NewExtension(oldRest, n.Child))
	}

	if p == len(key) {
		branch.Value = append([]byte(nil), value...)
	} else {
		newNb := key[p]
		branch.Children[newNb] = t.allocLeaf(key[p+1:], value)
	}

	branchH := t.arena.Insert(branch)
	t.free(h)
	if p > 0 {
		return t.arena.Insert(node.NewExtension(seg[:p], branchH)), true, nil, nil
	}
	return branchH, true, nil, nil
}

// insertIntoBranch is spec.md §4.3's "Branch vs incoming path" case.
func (t *Trie) insertIntoBranch(n node.Node, h node.Handle, key nibble.Path, value []byte) (node.Handle, bool, []byte, error) {
	if len(key) == 0 {
		prev := n.Value
		n.Value = append([]byte(nil), value...)
		n.Dirty = true
		n.HasEncoding = false
		n.HasDigest = false
		newH := t.arena.Insert(n)
		t.free(h)
		return newH, true, prev, nil
	}

	nb := key[0]
	newChildH, changed, prev, err := t.insertAt(n.Children[nb], key[1:], value)
	if err != nil {
		return h, false, nil, err
	}
	if !changed {
		return h, false, prev, nil
	}
	n.Children[nb] = newChildH
	n.Dirty = true
	n.HasEncoding = false
	n.HasDigest = false
	newH := t.arena.Insert(n)
	t.free(h)
	return newH, true, prev, nil
}
