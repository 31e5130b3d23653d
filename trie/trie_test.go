package trie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucidchain/mmpt/capability"
)

func TestEmptyTrieIsEmpty(t *testing.T) {
	tr := New(Options{})
	if !tr.IsEmpty() {
		t.Fatal("a freshly constructed trie should be empty")
	}
	if tr.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tr.Len())
	}
}

func TestGetOnEmptyTrie(t *testing.T) {
	tr := New(Options{})
	_, err := tr.Get([]byte("anything"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty trie: err = %v, want ErrNotFound", err)
	}
}

func TestInsertEmptyValueIsImplicitDelete(t *testing.T) {
	// Matches go-ethereum's Trie.Update: inserting a zero-length value
	// deletes the key rather than storing an empty "bytes" value,
	// because an empty Branch-own-value is indistinguishable from "no
	// value" (node.Node.HasValue/Occupants).
	tr := New(Options{})
	_, err := tr.Insert([]byte("ab"), []byte{})
	require.NoError(t, err)
	require.True(t, tr.IsEmpty())

	_, err = tr.Insert([]byte("ab"), []byte("x"))
	require.NoError(t, err)
	prev, err := tr.Insert([]byte("ab"), []byte{})
	require.NoError(t, err)
	require.Equal(t, "x", string(prev))
	require.True(t, tr.IsEmpty())
}

func TestInsertEmptyValueDoesNotOrphanSiblingAtBranch(t *testing.T) {
	// Regression test: "ab" used to be forced into a Branch's own value
	// slot by inserting "abc", where an empty value would previously
	// collapse to nil and vanish from Get while leaving the Branch
	// under I3 (Occupants() == 1).
	tr := New(Options{})
	_, err := tr.Insert([]byte("ab"), []byte{})
	require.NoError(t, err)
	_, err = tr.Insert([]byte("abc"), []byte("x"))
	require.NoError(t, err)

	_, err = tr.Get([]byte("ab"))
	require.ErrorIs(t, err, ErrNotFound)

	got, err := tr.Get([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, "x", string(got))
	require.NoError(t, tr.Audit())
}

func TestInsertThenGet(t *testing.T) {
	tr := New(Options{})
	prev, err := tr.Insert([]byte("dog"), []byte("puppy"))
	require.NoError(t, err)
	require.Nil(t, prev)

	got, err := tr.Get([]byte("dog"))
	require.NoError(t, err)
	require.Equal(t, "puppy", string(got))
}

func TestInsertOverwriteReturnsPreviousValue(t *testing.T) {
	tr := New(Options{})
	_, err := tr.Insert([]byte("dog"), []byte("puppy"))
	require.NoError(t, err)

	prev, err := tr.Insert([]byte("dog"), []byte("hound"))
	require.NoError(t, err)
	require.Equal(t, "puppy", string(prev))

	got, err := tr.Get([]byte("dog"))
	require.NoError(t, err)
	require.Equal(t, "hound", string(got))
}

func TestSingleByteKeyIsLeafDirectlyUnderRoot(t *testing.T) {
	tr := New(Options{})
	_, err := tr.Insert([]byte{0x01}, []byte("v"))
	require.NoError(t, err)

	n := tr.arena.Get(tr.root)
	require.Equal(t, "Leaf", n.Kind.String())
	require.Len(t, n.Path, 2) // two nibbles, the full one-byte key
}

func TestTwoKeysDivergingAtFirstNibbleProduceBranchNoExtension(t *testing.T) {
	tr := New(Options{})
	_, err := tr.Insert([]byte{0x10}, []byte("a"))
	require.NoError(t, err)
	_, err = tr.Insert([]byte{0x20}, []byte("b"))
	require.NoError(t, err)

	n := tr.arena.Get(tr.root)
	require.Equal(t, "Branch", n.Kind.String())
}

func TestTwoKeysSharingThreeNibblesProduceExtensionThenBranch(t *testing.T) {
	tr := New(Options{})
	// 0x12 0x30 = nibbles 1,2,3,0; 0x12 0x31 = nibbles 1,2,3,1: share
	// the first 3 nibbles, diverge on the 4th.
	_, err := tr.Insert([]byte{0x12, 0x30}, []byte("a"))
	require.NoError(t, err)
	_, err = tr.Insert([]byte{0x12, 0x31}, []byte("b"))
	require.NoError(t, err)

	root := tr.arena.Get(tr.root)
	require.Equal(t, "Extension", root.Kind.String())
	require.Len(t, root.Path, 3)

	branch := tr.arena.Get(root.Child)
	require.Equal(t, "Branch", branch.Kind.String())
	require.Equal(t, 2, branch.Occupants())
}

func TestRemoveAbsentKeyIsNoOp(t *testing.T) {
	tr := New(Options{})
	_, err := tr.Insert([]byte("dog"), []byte("puppy"))
	require.NoError(t, err)
	before, err := tr.ComputeHash()
	require.NoError(t, err)

	_, err = tr.Remove([]byte("cat"))
	require.ErrorIs(t, err, ErrNotFound)

	after, err := tr.ComputeHash()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestRemoveUndoesInsert(t *testing.T) {
	tr := New(Options{})
	empty, err := tr.ComputeHash()
	require.NoError(t, err)

	_, err = tr.Insert([]byte("dog"), []byte("puppy"))
	require.NoError(t, err)

	prev, err := tr.Remove([]byte("dog"))
	require.NoError(t, err)
	require.Equal(t, "puppy", string(prev))

	after, err := tr.ComputeHash()
	require.NoError(t, err)
	require.Equal(t, empty, after)
	require.True(t, tr.IsEmpty())
}

func TestRemoveWithPathContraction(t *testing.T) {
	// spec.md §8 scenario 3: insert {do, dog, doge, horse}, remove
	// doge, compare against inserting only {do, dog, horse}.
	left := New(Options{})
	for _, kv := range []KV{
		{Key: []byte("do"), Value: []byte("verb")},
		{Key: []byte("dog"), Value: []byte("puppy")},
		{Key: []byte("doge"), Value: []byte("coin")},
		{Key: []byte("horse"), Value: []byte("stallion")},
	} {
		_, err := left.Insert(kv.Key, kv.Value)
		require.NoError(t, err)
	}
	_, err := left.Remove([]byte("doge"))
	require.NoError(t, err)
	leftHash, err := left.ComputeHash()
	require.NoError(t, err)

	right := New(Options{})
	for _, kv := range []KV{
		{Key: []byte("do"), Value: []byte("verb")},
		{Key: []byte("dog"), Value: []byte("puppy")},
		{Key: []byte("horse"), Value: []byte("stallion")},
	} {
		_, err := right.Insert(kv.Key, kv.Value)
		require.NoError(t, err)
	}
	rightHash, err := right.ComputeHash()
	require.NoError(t, err)

	require.Equal(t, rightHash, leftHash)
	require.NoError(t, left.Audit())
	require.NoError(t, right.Audit())
}

func TestABCStructuralShape(t *testing.T) {
	// spec.md §8 scenario 5.
	tr := New(Options{})
	for _, kv := range []KV{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("ab"), Value: []byte("2")},
		{Key: []byte("abc"), Value: []byte("3")},
	} {
		_, err := tr.Insert(kv.Key, kv.Value)
		require.NoError(t, err)
	}

	got, err := tr.Get([]byte("ab"))
	require.NoError(t, err)
	require.Equal(t, "2", string(got))

	_, err = tr.Get([]byte("abcd"))
	require.ErrorIs(t, err, ErrNotFound)

	root := tr.arena.Get(tr.root)
	require.Equal(t, "Extension", root.Kind.String())
	branch := tr.arena.Get(root.Child)
	require.Equal(t, "Branch", branch.Kind.String())
	require.Equal(t, "1", string(branch.Value))
}

func TestAuditPassesAfterInsertsAndRemoves(t *testing.T) {
	tr := New(Options{})
	keys := []string{"do", "dog", "doge", "horse", "a", "ab", "abc"}
	for _, k := range keys {
		_, err := tr.Insert([]byte(k), []byte("v-"+k))
		require.NoError(t, err)
	}
	require.NoError(t, tr.Audit())

	for _, k := range []string{"doge", "ab"} {
		_, err := tr.Remove([]byte(k))
		require.NoError(t, err)
	}
	require.NoError(t, tr.Audit())
}

func TestInsertAllAndRemoveAll(t *testing.T) {
	tr := New(Options{})
	err := tr.InsertAll([]KV{
		{Key: []byte("do"), Value: []byte("verb")},
		{Key: []byte("dog"), Value: []byte("puppy")},
		{Key: []byte("horse"), Value: []byte("stallion")},
	})
	require.NoError(t, err)

	got, err := tr.Get([]byte("horse"))
	require.NoError(t, err)
	require.Equal(t, "stallion", string(got))

	// RemoveAll tolerates an absent key without reporting it as a
	// failure.
	err = tr.RemoveAll([][]byte{[]byte("do"), []byte("dog"), []byte("cat")})
	require.NoError(t, err)

	_, err = tr.Get([]byte("horse"))
	require.NoError(t, err)
	_, err = tr.Get([]byte("do"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInsertValueWithCBOREncoder(t *testing.T) {
	type account struct {
		Nonce   uint64
		Balance uint64
	}
	enc := capability.CBORValueEncoder{}
	tr := New(Options{ValueEncoder: enc})
	_, err := tr.InsertValue([]byte("alice"), account{Nonce: 1, Balance: 100})
	require.NoError(t, err)

	raw, err := tr.Get([]byte("alice"))
	require.NoError(t, err)

	var out account
	require.NoError(t, enc.DecodeValue(raw, &out))
	require.Equal(t, account{Nonce: 1, Balance: 100}, out)
}
