package trie

import (
	"github.com/lucidchain/mmpt/nibble"
	"github.com/lucidchain/mmpt/node"
)

// removeAt implements spec.md §4.3's remove algorithm, including the
// "structural change signal" bubbled up through the recursion so a
// parent can re-normalize per I1-I3. It returns the (possibly new,
// possibly Null) handle for the subtree rooted here, the removed
// value, and whether key was found. A not-found result leaves h and
// the arena completely untouched, matching "Removing a non-existent
// key is a no-op."
func (t *Trie) removeAt(h node.Handle, key nibble.Path) (newH node.Handle, prev []byte, found bool, err error) {
	if h == node.Null {
		return node.Null, nil, false, nil
	}

	n := t.arena.Get(h)
	switch n.Kind {
	case node.KindLeaf:
		return t.removeFromLeaf(n, h, key)
	case node.KindExtension:
		return t.removeFromExtension(n, h, key)
	case node.KindBranch:
		return t.removeFromBranch(n, h, key)
	default:
		t.raiseInvariant("unknown node kind during remove")
		return h, nil, false, nil // unreachable
	}
}

func (t *Trie) removeFromLeaf(n node.Node, h node.Handle, key nibble.Path) (node.Handle, []byte, bool, error) {
	if !nibble.Equal(n.Path, key) {
		return h, nil, false, nil
	}
	t.free(h)
	return node.Null, n.Value, true, nil
}

func (t *Trie) removeFromExtension(n node.Node, h node.Handle, key nibble.Path) (node.Handle, []byte, bool, error) {
	seg := n.Path
	if len(key) < len(seg) || !nibble.Equal(key[:len(seg)], seg) {
		return h, nil, false, nil
	}

	newChildH, prev, found, err := t.removeAt(n.Child, key[len(seg):])
	if err != nil {
		return h, nil, false, err
	}
	if !found {
		return h, nil, false, nil
	}

	t.free(h)
	if newChildH == node.Null {
		// The child Branch an Extension points to can never empty out
		// entirely on its own (I3 guarantees >=2 occupants before any
		// single-key removal), so this should be unreachable; treated
		// defensively as "this whole subtree is gone."
		return node.Null, prev, true, nil
	}

	merged, err := t.absorbChild(seg, newChildH)
	if err != nil {
		return h, nil, false, err
	}
	return merged, prev, true, nil
}

// absorbChild implements spec.md §4.3's Extension re-normalization:
// a child that is still a Branch is simply re-wrapped; a child that
// collapsed to a Leaf or Extension is merged into this segment
// (adjacent Extensions always merge).
func (t *Trie) absorbChild(seg nibble.Path, childH node.Handle) (node.Handle, error) {
	return t.mergePrefix(seg, childH)
}

func (t *Trie) removeFromBranch(n node.Node, h node.Handle, key nibble.Path) (node.Handle, []byte, bool, error) {
	if len(key) == 0 {
		if n.Value == nil {
			return h, nil, false, nil
		}
		prev := n.Value
		remaining := n.Occupants() - 1
		if remaining >= 2 {
			n.Value = nil
			n.Dirty = true
			n.HasEncoding, n.HasDigest = false, false
			newH := t.arena.Insert(n)
			t.free(h)
			return newH, prev, true, nil
		}
		// Exactly one occupant left, and it cannot be the value (just
		// cleared): collapse onto the sole remaining child.
		nb, ok := n.SoleChildNibble()
		if !ok {
			t.raiseInvariant("branch with <2 occupants had no sole child after clearing value")
		}
		merged, err := t.collapseChild(nb, n.Children[nb])
		t.free(h)
		return merged, prev, true, err
	}

	nb := int(key[0])
	childH := n.Children[nb]
	if childH == node.Null {
		return h, nil, false, nil
	}

	newChildH, prev, found, err := t.removeAt(childH, key[1:])
	if err != nil {
		return h, nil, false, err
	}
	if !found {
		return h, nil, false, nil
	}

	if newChildH != node.Null {
		// Child subtree shrank but survives: the branch's own
		// cardinality is unchanged, only the child handle is updated.
		n.Children[nb] = newChildH
		n.Dirty = true
		n.HasEncoding, n.HasDigest = false, false
		newH := t.arena.Insert(n)
		t.free(h)
		return newH, prev, true, nil
	}

	// Child vanished entirely: this branch loses one occupant.
	remaining := n.Occupants() - 1
	if remaining >= 2 {
		n.Children[nb] = node.Null
		n.Dirty = true
		n.HasEncoding, n.HasDigest = false, false
		newH := t.arena.Insert(n)
		t.free(h)
		return newH, prev, true, nil
	}

	if n.Value != nil {
		merged := t.arena.Insert(node.NewLeaf(nibble.Path{}, n.Value))
		t.free(h)
		return merged, prev, true, nil
	}
	otherNb, ok := soleOtherChild(n, nb)
	if !ok {
		t.raiseInvariant("branch with <2 occupants had no sole remaining child")
	}
	merged, err := t.collapseChild(otherNb, n.Children[otherNb])
	t.free(h)
	return merged, prev, true, err
}

// collapseChild implements spec.md §4.3's "sole occupant is a child
// at nibble n" collapse rules.
func (t *Trie) collapseChild(nb int, childH node.Handle) (node.Handle, error) {
	return t.mergePrefix(nibble.Path{byte(nb)}, childH)
}

// mergePrefix merges a Leaf or Extension child into prefix (the
// nibble(s) that used to lead to it), freeing the child's old handle;
// a Branch child is left live and simply re-wrapped in an Extension
// over prefix, since I1 forbids collapsing a Branch into anything
// else.
func (t *Trie) mergePrefix(prefix nibble.Path, childH node.Handle) (node.Handle, error) {
	child := t.arena.Get(childH)
	switch child.Kind {
	case node.KindLeaf:
		merged := t.arena.Insert(node.NewLeaf(nibble.Concat(prefix, child.Path), child.Value))
		t.free(childH)
		return merged, nil
	case node.KindExtension:
		merged := t.arena.Insert(node.NewExtension(nibble.Concat(prefix, child.Path), child.Child))
		t.free(childH)
		return merged, nil
	case node.KindBranch:
		return t.arena.Insert(node.NewExtension(prefix, childH)), nil
	default:
		t.raiseInvariant("unknown node kind merging branch child")
		return node.Null, nil // unreachable
	}
}

func soleOtherChild(n node.Node, exclude int) (int, bool) {
	for i, c := range n.Children {
		if i == exclude || c == node.Null {
			continue
		}
		return i, true
	}
	return 0, false
}
