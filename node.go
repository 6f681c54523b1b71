package ranktree

import "cmp"

type color bool

const (
	red   color = true
	black color = false
)

// Node is one key/value pair in one version of a Tree. A Node is immutable
// once the version it was created in has been superseded: every "mutation"
// to an older node is realized by allocating a fresh clone and publishing it
// into the current version's spine instead. See clone and the
// assertWritable family below.
type Node[K cmp.Ordered, V any] struct {
	key         K
	value       V
	color       color
	left, right *Node[K, V]
	version     int
}

// newLeaf allocates a fresh black node with the zero value, stamped with
// the version it is being created in. Callers that need a red leaf (the
// common case for a non-root insertion) flip the color after construction;
// see (*Tree[K, V]).Insert.
func newLeaf[K cmp.Ordered, V any](key K, version int) *Node[K, V] {
	return &Node[K, V]{key: key, color: black, version: version}
}

// clone returns a fresh node carrying the same key, value, color and
// children as n, but stamped with version. The original n is left
// untouched, so any older version still referencing n continues to observe
// it unchanged.
func (n *Node[K, V]) clone(version int) *Node[K, V] {
	return &Node[K, V]{
		key:     n.key,
		value:   n.value,
		color:   n.color,
		left:    n.left,
		right:   n.right,
		version: version,
	}
}

func (n *Node[K, V]) isRed() bool {
	return n != nil && n.color == red
}

// assertWritable panics if n was not allocated for the given version. Every
// write to a Node's fields must go through here first, checking every
// field write (colors and child pointers alike) rather than only color
// writes, so any attempt to mutate an older, supposedly immutable version
// is caught immediately instead of silently corrupting it.
func (n *Node[K, V]) assertWritable(version int) {
	if n.version != version {
		panic(&staleWriteError{nodeVersion: n.version, currentVersion: version})
	}
}

func (n *Node[K, V]) setColor(version int, c color) {
	n.assertWritable(version)
	n.color = c
}

func (n *Node[K, V]) setLeft(version int, child *Node[K, V]) {
	n.assertWritable(version)
	n.left = child
}

func (n *Node[K, V]) setRight(version int, child *Node[K, V]) {
	n.assertWritable(version)
	n.right = child
}

func (n *Node[K, V]) setValue(version int, v V) {
	n.assertWritable(version)
	n.value = v
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the node's current value.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Left returns the node's left child in the version it was cloned for, or
// nil. Exposed so callers outside the package can walk a version's shape
// (e.g. to compute a derived statistic like rank) without the package
// growing a general-purpose iteration API.
func (n *Node[K, V]) Left() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the node's right child, or nil. See Left.
func (n *Node[K, V]) Right() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.right
}
