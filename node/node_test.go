package node

import (
	"testing"

	"github.com/lucidchain/mmpt/nibble"
)

func TestNewLeafCopiesValue(t *testing.T) {
	v := []byte("reindeer")
	n := NewLeaf(nibble.Path{1, 2, 3}, v)
	v[0] = 'X'
	if n.Value[0] == 'X' {
		t.Fatal("NewLeaf aliased the caller's value slice")
	}
}

func TestNewExtensionRejectsEmptySegment(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing an Extension with an empty segment (I2)")
		}
	}()
	NewExtension(nibble.Path{}, Handle(1))
}

func TestBranchOccupants(t *testing.T) {
	b := NewBranch()
	if got := b.Occupants(); got != 0 {
		t.Fatalf("empty branch: Occupants() = %d, want 0", got)
	}
	b.Value = []byte("v")
	if got := b.Occupants(); got != 1 {
		t.Fatalf("branch with value: Occupants() = %d, want 1", got)
	}
	b.Children[5] = Handle(1)
	if got := b.Occupants(); got != 2 {
		t.Fatalf("branch with value and child: Occupants() = %d, want 2", got)
	}
}

func TestSoleChildNibble(t *testing.T) {
	b := NewBranch()
	if _, ok := b.SoleChildNibble(); ok {
		t.Fatal("expected no sole child on an empty branch")
	}
	b.Children[9] = Handle(3)
	idx, ok := b.SoleChildNibble()
	if !ok || idx != 9 {
		t.Fatalf("SoleChildNibble() = (%d, %v), want (9, true)", idx, ok)
	}
}
