package trie

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lucidchain/mmpt/nibble"
	"github.com/lucidchain/mmpt/node"
)

// Audit walks every node reachable from the root and checks I1-I3 and
// I6 (spec.md §3, §8), returning every violation found rather than
// stopping at the first — a diagnostic aid for the property tests in
// trie_test.go, not part of the mutation hot path. I4 and I5 are
// guaranteed by construction (insert/remove never produce duplicate
// or mis-prefixed keys) and are instead checked indirectly by the
// property tests that compare Get against the keys actually inserted.
func (t *Trie) Audit() error {
	var errs []error
	t.auditNode(t.root, nibble.Path{}, &errs)
	if len(errs) == 0 {
		return nil
	}
	return &multierror.Error{Errors: errs}
}

func (t *Trie) auditNode(h node.Handle, prefix nibble.Path, errs *[]error) {
	if h == node.Null {
		return
	}
	n := t.arena.Get(h)
	switch n.Kind {
	case node.KindLeaf:
		// No further structural constraint on a terminal node.

	case node.KindExtension:
		if len(n.Path) == 0 {
			*errs = append(*errs, fmt.Errorf("I2 violated: empty Extension segment at prefix %s", prefix))
		}
		if n.Child == node.Null {
			*errs = append(*errs, fmt.Errorf("Extension at prefix %s has a Null child", prefix))
			return
		}
		if child := t.arena.Get(n.Child); child.Kind != node.KindBranch {
			*errs = append(*errs, fmt.Errorf("I1 violated: Extension at prefix %s has a %s child, want Branch", prefix, child.Kind))
		}
		t.auditNode(n.Child, nibble.Concat(prefix, n.Path), errs)

	case node.KindBranch:
		if n.Occupants() < 2 {
			*errs = append(*errs, fmt.Errorf("I3 violated: Branch at prefix %s has %d occupant(s)", prefix, n.Occupants()))
		}
		for i, c := range n.Children {
			if c != node.Null {
				t.auditNode(c, nibble.Concat(prefix, nibble.Path{byte(i)}), errs)
			}
		}

	default:
		*errs = append(*errs, fmt.Errorf("unknown node kind %v at prefix %s", n.Kind, prefix))
	}
}
