// Package arena implements the append-mostly node pool the trie builds
// on: every node lives in a slice slot addressed by a stable integer
// Handle, never by a direct pointer, so that reparenting a subtree
// during insert/remove only ever rewrites handles, never aliases
// live nodes.
package arena

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Handle is a stable reference to a slot in an Arena. The zero value,
// Null, means "no node."
type Handle uint32

// Null is the sentinel handle denoting the absence of a node (an
// empty child slot, or an empty trie's root).
const Null Handle = 0

// Arena owns a pool of values of type T, addressed by Handle. Handle
// 0 is reserved as Null and is never allocated to a real value, so
// slot i in the backing slice corresponds to Handle(i+1).
//
// Arena is not safe for concurrent use; per spec.md §5 the trie is
// single-writer.
type Arena[T any] struct {
	slots []T
	free  *bitset.BitSet // set bit i => slots[i] is free for reuse
}

// New returns an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{free: bitset.New(0)}
}

// Insert stores v in the arena and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	if idx, ok := a.free.NextSet(0); ok {
		a.free.Clear(idx)
		a.slots[idx] = v
		return Handle(idx + 1)
	}
	a.slots = append(a.slots, v)
	return Handle(len(a.slots))
}

// Get returns the value stored at h. Calling Get with Null or with a
// handle that was previously Remove'd is a caller contract violation
// and panics, per spec.md §4.2 ("a program error, not a recoverable
// failure").
func (a *Arena[T]) Get(h Handle) T {
	a.mustBeLive(h)
	return a.slots[h-1]
}

// Set overwrites the value stored at h.
func (a *Arena[T]) Set(h Handle, v T) {
	a.mustBeLive(h)
	a.slots[h-1] = v
}

// Remove frees h's slot for reuse by a future Insert. Using h again
// afterward (other than via a fresh Insert's returned handle) is a
// caller contract violation.
func (a *Arena[T]) Remove(h Handle) {
	a.mustBeLive(h)
	var zero T
	a.slots[h-1] = zero
	a.free.Set(uint(h - 1))
}

// Len reports the number of live (non-freed) entries in the arena.
func (a *Arena[T]) Len() int {
	return len(a.slots) - int(a.free.Count())
}

func (a *Arena[T]) mustBeLive(h Handle) {
	if h == Null {
		panic("arena: Null handle dereferenced")
	}
	idx := uint(h - 1)
	if idx >= uint(len(a.slots)) {
		panic(fmt.Sprintf("arena: handle %d out of range (len=%d)", h, len(a.slots)))
	}
	if a.free.Test(idx) {
		panic(fmt.Sprintf("arena: handle %d reused after Remove", h))
	}
}
