package trie

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/lucidchain/mmpt/nibble"
	"github.com/lucidchain/mmpt/node"
)

// emptyRef is the RLP encoding of the empty byte string: the single
// byte 0x80. It is both the NULL child reference (spec.md §4.4) and
// the pre-image hashed for the empty-trie root hash (spec.md §6).
var emptyRef = rlp.RawValue{0x80}

// encodeNode produces node h's canonical encoding per spec.md §4.4: a
// nested RLP list of its parts. The result is cached on the node
// (spec.md §9) and only recomputed when Dirty.
func (t *Trie) encodeNode(h node.Handle) ([]byte, error) {
	n := t.arena.Get(h)
	if n.HasEncoding && !n.Dirty {
		return n.Encoding, nil
	}

	var enc []byte
	var err error
	switch n.Kind {
	case node.KindLeaf:
		enc, err = rlp.EncodeToBytes([][]byte{
			nibble.HexPrefixEncode(n.Path, true),
			n.Value,
		})

	case node.KindExtension:
		childRef, rerr := t.ref(n.Child)
		if rerr != nil {
			return nil, rerr
		}
		enc, err = rlp.EncodeToBytes([]interface{}{
			nibble.HexPrefixEncode(n.Path, false),
			childRef,
		})

	case node.KindBranch:
		elems := make([]interface{}, 17)
		for i := 0; i < 16; i++ {
			ref, rerr := t.ref(n.Children[i])
			if rerr != nil {
				return nil, rerr
			}
			elems[i] = ref
		}
		if n.Value != nil {
			elems[16] = n.Value
		} else {
			elems[16] = []byte{}
		}
		enc, err = rlp.EncodeToBytes(elems)

	default:
		t.raiseInvariant(fmt.Sprintf("unknown node kind %v during encode", n.Kind))
	}
	if err != nil {
		return nil, &EncodingFailure{Op: "node", Err: err}
	}

	n.Encoding = enc
	n.HasEncoding = true
	n.Dirty = false
	t.arena.Set(h, n)
	return enc, nil
}

// ref is spec.md §4.4's "ref(child)": a node's full encoding embedded
// inline when that encoding is under 32 bytes, else its 32-byte
// digest. Strict "<", not "<=" — a 32-byte encoding is always hashed.
func (t *Trie) ref(h node.Handle) (rlp.RawValue, error) {
	if h == node.Null {
		return emptyRef, nil
	}
	enc, err := t.encodeNode(h)
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

// digestOf returns h's digest, computing and caching it from enc
// (h's already-computed encoding) on first use.
func (t *Trie) digestOf(h node.Handle, enc []byte) ([32]byte, error) {
	n := t.arena.Get(h)
	if n.HasDigest && !n.Dirty {
		return n.Digest, nil
	}
	n.Digest = t.digest.Sum(enc)
	n.HasDigest = true
	t.arena.Set(h, n)
	return n.Digest, nil
}
