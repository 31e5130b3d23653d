package trie

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/sync/errgroup"

	"github.com/lucidchain/mmpt/node"
)

// ComputeHash returns the 32-byte root commitment of the trie's
// current contents, per spec.md §4.4/§6: the digest of the root's
// canonical encoding, or the Ethereum empty-trie hash
// (digest(RLP(""))) when the trie is empty.
func (t *Trie) ComputeHash() (common.Hash, error) {
	if t.root == node.Null {
		return common.Hash(t.digest.Sum(emptyRef)), nil
	}
	enc, err := t.encodeNode(t.root)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(t.digest.Sum(enc)), nil
}

// ComputeHashParallel computes the same digest as ComputeHash but
// fans a Branch's 16 children out across an errgroup before
// combining them, per spec.md §5 ("Hash computation ... may be
// parallelized by subtree"). It must not run concurrently with any
// mutating call on the same Trie. Results are bit-identical to
// ComputeHash; see vectors_test.go's parity property test.
func (t *Trie) ComputeHashParallel(ctx context.Context) (common.Hash, error) {
	if t.root == node.Null {
		return common.Hash(t.digest.Sum(emptyRef)), nil
	}
	enc, err := t.encodeNodeParallel(ctx, t.root)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(t.digest.Sum(enc)), nil
}

func (t *Trie) encodeNodeParallel(ctx context.Context, h node.Handle) ([]byte, error) {
	n := t.arena.Get(h)
	if n.HasEncoding && !n.Dirty {
		return n.Encoding, nil
	}
	if n.Kind != node.KindBranch {
		// Only Branch fans out meaningfully (16 independent children);
		// Leaf and Extension fall back to the sequential encoder.
		return t.encodeNode(h)
	}

	refs := make([]rlp.RawValue, 16)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < 16; i++ {
		i := i
		child := n.Children[i]
		g.Go(func() error {
			r, err := t.refParallel(gctx, child)
			if err != nil {
				return err
			}
			refs[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	elems := make([]interface{}, 17)
	for i := 0; i < 16; i++ {
		elems[i] = refs[i]
	}
	if n.Value != nil {
		elems[16] = n.Value
	} else {
		elems[16] = []byte{}
	}
	enc, err := rlp.EncodeToBytes(elems)
	if err != nil {
		return nil, &EncodingFailure{Op: "node", Err: err}
	}

	n.Encoding = enc
	n.HasEncoding = true
	n.Dirty = false
	t.arena.Set(h, n)
	return enc, nil
}

func (t *Trie) refParallel(ctx context.Context, h node.Handle) (rlp.RawValue, error) {
	if h == node.Null {
		return emptyRef, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("trie: parallel hash canceled: %w", err)
	}
	enc, err := t.encodeNodeParallel(ctx, h)
	if err != nil {
		return nil, err
	}
	if len(enc) < 32 {
		return rlp.RawValue(enc), nil
	}
	digest, err := t.digestOf(h, enc)
	if err != nil {
		return nil, err
	}
	encodedDigest, err := rlp.EncodeToBytes(digest[:])
	if err != nil {
		return nil, &EncodingFailure{Op: "digest", Err: err}
	}
	return rlp.RawValue(encodedDigest), nil
}
