// Package pmap provides a canonical immutable map backed by a Patricia trie
// over hashed keys.
//
// Every update returns a new map that shares unmodified subtrees with its
// predecessor, so arbitrarily many historical versions stay live at O(1)
// cost. The trie branches on the lowest bit at which two key hashes differ,
// which makes the shape of a map a function of its contents alone: two maps
// holding the same key/value pairs are structurally identical no matter the
// order the pairs were inserted in. Hash collisions land in per-leaf buckets
// kept sorted by key, preserving canonicity.
//
// Lookup, insert and delete run in O(min(32, log n)) since the branching
// depth is bounded by the hash width.
package pmap

import (
	"cmp"
	"hash/maphash"
	"math/bits"
	"slices"
)

// All maps share one seed so that equal contents hash to equal shapes
// within a process.
var seed = maphash.MakeSeed()

func hashOf[K cmp.Ordered](k K) uint32 {
	h := maphash.Comparable(seed, k)
	return uint32(h) ^ uint32(h>>32)
}

// Entry is a single key/value pair.
type Entry[K cmp.Ordered, V any] struct {
	Key K
	Val V
}

// Map is an immutable key/value dictionary. The zero value is the empty map.
type Map[K cmp.Ordered, V any] struct {
	root node[K, V]
}

// New returns an empty map.
func New[K cmp.Ordered, V any]() Map[K, V] {
	return Map[K, V]{}
}

type node[K cmp.Ordered, V any] interface {
	prefixBits() uint32
}

// leaf holds all entries whose keys share one hash.
type leaf[K cmp.Ordered, V any] struct {
	hash    uint32
	entries []Entry[K, V] // sorted by key
}

// branch splits on mask, a single bit; prefix holds the bits below it shared
// by every hash underneath. left holds hashes with the mask bit clear.
type branch[K cmp.Ordered, V any] struct {
	prefix, mask uint32
	left, right  node[K, V]
}

func (l *leaf[K, V]) prefixBits() uint32   { return l.hash }
func (b *branch[K, V]) prefixBits() uint32 { return b.prefix }

func maskBelow(h, m uint32) uint32 { return h & (m - 1) }

func zeroBit(h, m uint32) bool { return h&m == 0 }

func (b *branch[K, V]) match(h uint32) bool { return maskBelow(h, b.mask) == b.prefix }

// join combines two subtrees with distinct prefixes into a branch on their
// lowest differing bit.
func join[K cmp.Ordered, V any](p0 uint32, t0 node[K, V], p1 uint32, t1 node[K, V]) node[K, V] {
	m := uint32(1) << uint(bits.TrailingZeros32(p0^p1))
	pre := maskBelow(p0, m)
	if zeroBit(p0, m) {
		return &branch[K, V]{prefix: pre, mask: m, left: t0, right: t1}
	}
	return &branch[K, V]{prefix: pre, mask: m, left: t1, right: t0}
}

// mkBranch rebuilds a branch, collapsing when a side has emptied.
func mkBranch[K cmp.Ordered, V any](prefix, mask uint32, l, r node[K, V]) node[K, V] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	return &branch[K, V]{prefix: prefix, mask: mask, left: l, right: r}
}

func findEntry[K cmp.Ordered, V any](es []Entry[K, V], k K) (int, bool) {
	return slices.BinarySearchFunc(es, k, func(e Entry[K, V], k K) int {
		return cmp.Compare(e.Key, k)
	})
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int {
	n := 0
	walk(m.root, func(e Entry[K, V]) { n++ })
	return n
}

// IsEmpty reports whether the map has no entries.
func (m Map[K, V]) IsEmpty() bool { return m.root == nil }

// Get returns the value bound to k, with ok false when k is absent.
func (m Map[K, V]) Get(k K) (V, bool) {
	var zero V
	h := hashOf(k)
	n := m.root
	for {
		switch t := n.(type) {
		case nil:
			return zero, false
		case *leaf[K, V]:
			if t.hash != h {
				return zero, false
			}
			if i, ok := findEntry(t.entries, k); ok {
				return t.entries[i].Val, true
			}
			return zero, false
		case *branch[K, V]:
			if !t.match(h) {
				return zero, false
			}
			if zeroBit(h, t.mask) {
				n = t.left
			} else {
				n = t.right
			}
		}
	}
}

// GetOr returns the value bound to k, or def when k is absent.
func (m Map[K, V]) GetOr(k K, def V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	return def
}

// Has reports whether k is bound.
func (m Map[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Set returns a map with k bound to v, replacing any previous binding.
func (m Map[K, V]) Set(k K, v V) Map[K, V] {
	return Map[K, V]{root: insert(m.root, hashOf(k), k, v)}
}

func insert[K cmp.Ordered, V any](n node[K, V], h uint32, k K, v V) node[K, V] {
	switch t := n.(type) {
	case nil:
		return &leaf[K, V]{hash: h, entries: []Entry[K, V]{{Key: k, Val: v}}}
	case *leaf[K, V]:
		if t.hash == h {
			es := slices.Clone(t.entries)
			if i, ok := findEntry(es, k); ok {
				es[i].Val = v
			} else {
				es = slices.Insert(es, i, Entry[K, V]{Key: k, Val: v})
			}
			return &leaf[K, V]{hash: h, entries: es}
		}
		nl := &leaf[K, V]{hash: h, entries: []Entry[K, V]{{Key: k, Val: v}}}
		return join[K, V](h, nl, t.hash, t)
	case *branch[K, V]:
		if !t.match(h) {
			nl := &leaf[K, V]{hash: h, entries: []Entry[K, V]{{Key: k, Val: v}}}
			return join[K, V](h, nl, t.prefix, t)
		}
		if zeroBit(h, t.mask) {
			return &branch[K, V]{prefix: t.prefix, mask: t.mask, left: insert(t.left, h, k, v), right: t.right}
		}
		return &branch[K, V]{prefix: t.prefix, mask: t.mask, left: t.left, right: insert(t.right, h, k, v)}
	}
	panic("pmap: unknown node type")
}

// Delete returns a map without any binding for k. Deleting an absent key
// returns the map unchanged.
func (m Map[K, V]) Delete(k K) Map[K, V] {
	return Map[K, V]{root: remove[K, V](m.root, hashOf(k), k)}
}

func remove[K cmp.Ordered, V any](n node[K, V], h uint32, k K) node[K, V] {
	switch t := n.(type) {
	case nil:
		return nil
	case *leaf[K, V]:
		if t.hash != h {
			return n
		}
		i, ok := findEntry(t.entries, k)
		if !ok {
			return n
		}
		if len(t.entries) == 1 {
			return nil
		}
		return &leaf[K, V]{hash: h, entries: slices.Delete(slices.Clone(t.entries), i, i+1)}
	case *branch[K, V]:
		if !t.match(h) {
			return n
		}
		if zeroBit(h, t.mask) {
			l := remove[K, V](t.left, h, k)
			if l == t.left {
				return n
			}
			return mkBranch[K, V](t.prefix, t.mask, l, t.right)
		}
		r := remove[K, V](t.right, h, k)
		if r == t.right {
			return n
		}
		return mkBranch[K, V](t.prefix, t.mask, t.left, r)
	}
	panic("pmap: unknown node type")
}

// Combine merges m and o pointwise. A key present in both maps is bound to
// op(v1, v2) with v1 taken from m; if isZero is non-nil and reports true for
// the combined value, the key is dropped instead. Keys present in only one
// map keep their value.
func (m Map[K, V]) Combine(o Map[K, V], op func(V, V) V, isZero func(V) bool) Map[K, V] {
	return Map[K, V]{root: merge[K, V](m.root, o.root, op, isZero)}
}

func merge[K cmp.Ordered, V any](a, b node[K, V], op func(V, V) V, isZero func(V) bool) node[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	al, aLeaf := a.(*leaf[K, V])
	bl, bLeaf := b.(*leaf[K, V])
	switch {
	case aLeaf && bLeaf && al.hash == bl.hash:
		es := mergeEntries(al.entries, bl.entries, op, isZero)
		if len(es) == 0 {
			return nil
		}
		return &leaf[K, V]{hash: al.hash, entries: es}
	case aLeaf:
		return mergeLeaf[K, V](al, b, true, op, isZero)
	case bLeaf:
		return mergeLeaf[K, V](bl, a, false, op, isZero)
	}
	ab := a.(*branch[K, V])
	bb := b.(*branch[K, V])
	switch {
	case ab.mask == bb.mask && ab.prefix == bb.prefix:
		return mkBranch[K, V](ab.prefix, ab.mask,
			merge[K, V](ab.left, bb.left, op, isZero),
			merge[K, V](ab.right, bb.right, op, isZero))
	case ab.mask < bb.mask && ab.match(bb.prefix):
		// b sits entirely under one arm of a.
		if zeroBit(bb.prefix, ab.mask) {
			return mkBranch[K, V](ab.prefix, ab.mask, merge[K, V](ab.left, b, op, isZero), ab.right)
		}
		return mkBranch[K, V](ab.prefix, ab.mask, ab.left, merge[K, V](ab.right, b, op, isZero))
	case bb.mask < ab.mask && bb.match(ab.prefix):
		if zeroBit(ab.prefix, bb.mask) {
			return mkBranch[K, V](bb.prefix, bb.mask, merge[K, V](a, bb.left, op, isZero), bb.right)
		}
		return mkBranch[K, V](bb.prefix, bb.mask, bb.left, merge[K, V](a, bb.right, op, isZero))
	default:
		return join[K, V](ab.prefix, a, bb.prefix, b)
	}
}

// mergeLeaf folds a single-hash leaf into tree t. leafLeft records which
// argument of Combine the leaf came from so op sees its operands in order.
func mergeLeaf[K cmp.Ordered, V any](l *leaf[K, V], t node[K, V], leafLeft bool, op func(V, V) V, isZero func(V) bool) node[K, V] {
	switch tt := t.(type) {
	case *leaf[K, V]:
		if tt.hash == l.hash {
			var es []Entry[K, V]
			if leafLeft {
				es = mergeEntries(l.entries, tt.entries, op, isZero)
			} else {
				es = mergeEntries(tt.entries, l.entries, op, isZero)
			}
			if len(es) == 0 {
				return nil
			}
			return &leaf[K, V]{hash: l.hash, entries: es}
		}
		return join[K, V](l.hash, l, tt.hash, tt)
	case *branch[K, V]:
		if !tt.match(l.hash) {
			return join[K, V](l.hash, l, tt.prefix, tt)
		}
		if zeroBit(l.hash, tt.mask) {
			return mkBranch[K, V](tt.prefix, tt.mask, mergeLeaf[K, V](l, tt.left, leafLeft, op, isZero), tt.right)
		}
		return mkBranch[K, V](tt.prefix, tt.mask, tt.left, mergeLeaf[K, V](l, tt.right, leafLeft, op, isZero))
	}
	panic("pmap: unknown node type")
}

func mergeEntries[K cmp.Ordered, V any](ea, eb []Entry[K, V], op func(V, V) V, isZero func(V) bool) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(ea)+len(eb))
	i, j := 0, 0
	for i < len(ea) && j < len(eb) {
		switch {
		case ea[i].Key < eb[j].Key:
			out = append(out, ea[i])
			i++
		case eb[j].Key < ea[i].Key:
			out = append(out, eb[j])
			j++
		default:
			v := op(ea[i].Val, eb[j].Val)
			if isZero == nil || !isZero(v) {
				out = append(out, Entry[K, V]{Key: ea[i].Key, Val: v})
			}
			i++
			j++
		}
	}
	out = append(out, ea[i:]...)
	out = append(out, eb[j:]...)
	return out
}

func walk[K cmp.Ordered, V any](n node[K, V], f func(Entry[K, V])) {
	switch t := n.(type) {
	case nil:
	case *leaf[K, V]:
		for _, e := range t.entries {
			f(e)
		}
	case *branch[K, V]:
		walk(t.left, f)
		walk(t.right, f)
	}
}

// Entries returns all key/value pairs sorted by key.
func (m Map[K, V]) Entries() []Entry[K, V] {
	var out []Entry[K, V]
	walk(m.root, func(e Entry[K, V]) { out = append(out, e) })
	slices.SortFunc(out, func(a, b Entry[K, V]) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

// Keys returns the domain of the map in sorted order.
func (m Map[K, V]) Keys() []K {
	es := m.Entries()
	out := make([]K, len(es))
	for i, e := range es {
		out[i] = e.Key
	}
	return out
}

// Values returns the values of the map in key order.
func (m Map[K, V]) Values() []V {
	es := m.Entries()
	out := make([]V, len(es))
	for i, e := range es {
		out[i] = e.Val
	}
	return out
}

// Choose returns an arbitrary (but deterministic for a given map) entry,
// with ok false when the map is empty.
func (m Map[K, V]) Choose() (k K, v V, ok bool) {
	n := m.root
	for {
		switch t := n.(type) {
		case nil:
			return k, v, false
		case *leaf[K, V]:
			e := t.entries[0]
			return e.Key, e.Val, true
		case *branch[K, V]:
			n = t.left
		}
	}
}

// Equal reports whether a and b hold the same key/value pairs. Because the
// trie shape is canonical this is a plain structural walk.
func Equal[K cmp.Ordered, V comparable](a, b Map[K, V]) bool {
	return eqNode[K, V](a.root, b.root)
}

func eqNode[K cmp.Ordered, V comparable](a, b node[K, V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch at := a.(type) {
	case *leaf[K, V]:
		bt, ok := b.(*leaf[K, V])
		return ok && at.hash == bt.hash && slices.Equal(at.entries, bt.entries)
	case *branch[K, V]:
		bt, ok := b.(*branch[K, V])
		return ok && at.prefix == bt.prefix && at.mask == bt.mask &&
			eqNode[K, V](at.left, bt.left) && eqNode[K, V](at.right, bt.right)
	}
	panic("pmap: unknown node type")
}
