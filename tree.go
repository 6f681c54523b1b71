// Package ranktree implements a partially-persistent, ordered red-black
// map: Insert and Delete advance a version counter and leave every prior
// version's shape intact, recoverable with Rewind.
package ranktree

import "cmp"

// Tree is a partially-persistent red-black map: every mutation produces a
// new version while every earlier version remains fully observable, at the
// cost of cloning only the O(log n) nodes on the affected root-to-leaf
// spine (structural sharing). It is not safe for concurrent use; all read
// and write operations on the same Tree must be run serially.
type Tree[K cmp.Ordered, V any] struct {
	reg *registry[K, V]
}

// New returns an empty Tree at version 0.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{reg: newRegistry[K, V]()}
}

// Version returns the current version number.
func (t *Tree[K, V]) Version() int {
	return t.reg.current
}

// Rewind reinstates the version current-delta as the current version. It
// requires 1 <= delta <= Version(); the versions strictly newer than the
// target are not eagerly discarded — they remain in the registry until the
// next mutation overwrites them.
func (t *Tree[K, V]) Rewind(delta int) error {
	return t.reg.rewind(delta)
}

// Root returns the root node of the current version, or nil if the tree is
// empty. Exposed alongside Left/Right on Node so callers can derive
// statistics (e.g. rank) from a version's shape without a dedicated API for
// each one.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.reg.currentRoot()
}

// Search returns the node for key in the current version, or nil.
func (t *Tree[K, V]) Search(key K) *Node[K, V] {
	return search(t.reg.currentRoot(), key)
}

func search[K cmp.Ordered, V any](n *Node[K, V], key K) *Node[K, V] {
	for n != nil && n.key != key {
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n
}

// Min returns the node with the smallest key in the current version, or nil
// if the tree is empty.
func (t *Tree[K, V]) Min() *Node[K, V] {
	root := t.reg.currentRoot()
	if root == nil {
		return nil
	}
	for root.left != nil {
		root = root.left
	}
	return root
}

// Max returns the node with the largest key in the current version, or nil
// if the tree is empty.
func (t *Tree[K, V]) Max() *Node[K, V] {
	root := t.reg.currentRoot()
	if root == nil {
		return nil
	}
	for root.right != nil {
		root = root.right
	}
	return root
}

// Insert bumps the version and returns the handle to key's node in the new
// version. If key was already present, its value is preserved and may be
// overwritten through the returned handle; otherwise a fresh red leaf is
// inserted and red-black balance is restored.
func (t *Tree[K, V]) Insert(key K) *Node[K, V] {
	t.reg.reserveCurrentSlot()
	version := t.reg.current

	prevRoot := t.reg.previousRoot()
	if prevRoot == nil {
		n := newLeaf[K, V](key, version)
		t.reg.installRoot(n)
		return n
	}

	parent := t.clonePathTo(key)
	if parent == nil {
		// The tree is non-empty (handled above), so a nil parent here
		// means key is the root itself.
		newRoot := prevRoot.clone(version)
		t.reg.installRoot(newRoot)
		return newRoot
	}

	if key < parent.key {
		if parent.left != nil {
			cloned := parent.left.clone(version)
			parent.setLeft(version, cloned)
			return cloned
		}
		leaf := newLeaf[K, V](key, version)
		leaf.setColor(version, red)
		parent.setLeft(version, leaf)
		t.insertFixup(leaf)
		// The fixup may have rotated the just-inserted node to a
		// different position (or cloned it again); re-search to
		// return the node actually reachable from the new root.
		return t.Search(key)
	}

	if parent.right != nil {
		cloned := parent.right.clone(version)
		parent.setRight(version, cloned)
		return cloned
	}
	leaf := newLeaf[K, V](key, version)
	leaf.setColor(version, red)
	parent.setRight(version, leaf)
	t.insertFixup(leaf)
	return t.Search(key)
}

// Set inserts key if absent, or locates its existing node, and assigns value
// to it in the current version. It returns the node holding the assignment.
func (t *Tree[K, V]) Set(key K, value V) *Node[K, V] {
	n := t.Insert(key)
	n.setValue(t.reg.current, value)
	return n
}

// Delete removes key from the tree. It is a no-op, and the version does not
// advance, if key is absent.
func (t *Tree[K, V]) Delete(key K) {
	if t.Search(key) == nil {
		return
	}
	t.reg.reserveCurrentSlot()
	version := t.reg.current

	parent := t.clonePathTo(key)
	var nodeToDelete *Node[K, V]
	switch {
	case parent == nil:
		nodeToDelete = t.reg.roots[version-1]
	case parent.left != nil && parent.left.key == key:
		nodeToDelete = parent.left
	default:
		nodeToDelete = parent.right
	}

	requiresFixup := !nodeToDelete.isRed()

	if nodeToDelete.left == nil {
		var replacement *Node[K, V]
		if nodeToDelete.right != nil {
			replacement = nodeToDelete.right.clone(version)
		}
		t.transplant(nodeToDelete, parent, replacement)
		if requiresFixup && t.reg.currentRoot() != nil {
			t.deleteFixup(replacement, parent)
		}
		return
	}

	if nodeToDelete.right == nil {
		replacement := nodeToDelete.left.clone(version)
		t.transplant(nodeToDelete, parent, replacement)
		if requiresFixup {
			t.deleteFixup(replacement, parent)
		}
		return
	}

	// Two children: splice in the in-order successor.
	succParent := t.minParent(nodeToDelete.right)
	var succ *Node[K, V]
	if succParent != nil {
		succ = succParent.left
	} else {
		succParent = nodeToDelete
		succ = nodeToDelete.right
	}

	requiresFixup = !succ.isRed()
	if succParent == nodeToDelete {
		// Successor is d's direct right child.
		clonedSucc := succ.clone(version)
		t.transplant(nodeToDelete, parent, clonedSucc)
		clonedSucc.setLeft(version, nodeToDelete.left)
		clonedSucc.setColor(version, color(nodeToDelete.isRed()))
		if requiresFixup {
			var clonedRight *Node[K, V]
			if clonedSucc.right != nil {
				clonedRight = clonedSucc.right.clone(version)
			}
			clonedSucc.setRight(version, clonedRight)
			t.deleteFixup(clonedRight, clonedSucc)
		}
		return
	}

	// Successor is deeper in d's right subtree: clone the path down to it.
	newRight, succNewParent := t.clonePath(nodeToDelete.right, succ.key)
	clonedSucc := succ.clone(version)
	t.transplant(nodeToDelete, parent, clonedSucc)
	clonedSucc.setColor(version, color(nodeToDelete.isRed()))
	clonedSucc.setLeft(version, nodeToDelete.left)
	clonedSucc.setRight(version, newRight)
	succNewParent.setLeft(version, succ.right)
	if requiresFixup {
		var clonedLeft *Node[K, V]
		if succNewParent.left != nil {
			clonedLeft = succNewParent.left.clone(version)
		}
		succNewParent.setLeft(version, clonedLeft)
		t.deleteFixup(clonedLeft, succNewParent)
	}
}

func (t *Tree[K, V]) minParent(node *Node[K, V]) *Node[K, V] {
	if node.left == nil {
		return nil
	}
	for node.left.left != nil {
		node = node.left
	}
	return node
}

func (t *Tree[K, V]) transplant(target, targetParent, source *Node[K, V]) {
	version := t.reg.current
	switch {
	case targetParent == nil:
		t.reg.installRoot(source)
	case targetParent.left == target:
		targetParent.setLeft(version, source)
	default:
		targetParent.setRight(version, source)
	}
}

// clonePathTo clones the spine of the previous version's tree down to key's
// parent, installing the freshly cloned root into the current version's
// slot. It returns nil, without cloning or installing anything, when the
// previous version is empty or key is its root.
func (t *Tree[K, V]) clonePathTo(key K) *Node[K, V] {
	oldRoot := t.reg.previousRoot()
	if oldRoot == nil || oldRoot.key == key {
		return nil
	}
	newRoot, parent := t.clonePath(oldRoot, key)
	t.reg.installRoot(newRoot)
	return parent
}

// clonePath clones from and every node on the path from it down to key's
// parent, returning the cloned subtree root and that parent. Used both for
// the root-to-key spine (via clonePathTo) and, during deletion, for the
// path from a deleted node's right child down to its in-order successor.
func (t *Tree[K, V]) clonePath(from *Node[K, V], key K) (*Node[K, V], *Node[K, V]) {
	version := t.reg.current
	newFrom := from.clone(version)
	node := newFrom
	for {
		if node.left != nil && node.left.key == key {
			return newFrom, node
		}
		if node.right != nil && node.right.key == key {
			return newFrom, node
		}
		if key < node.key && node.left == nil {
			return newFrom, node
		}
		if key > node.key && node.right == nil {
			return newFrom, node
		}
		if key < node.key {
			cloned := node.left.clone(version)
			node.setLeft(version, cloned)
			node = cloned
		} else {
			cloned := node.right.clone(version)
			node.setRight(version, cloned)
			node = cloned
		}
	}
}

// rotateLeft and rotateRight assume target and target.right (resp. .left)
// already belong to the current version — the caller clones whichever
// sibling/child needs to move before rotating.

func (t *Tree[K, V]) rotateLeft(target, targetParent *Node[K, V]) {
	version := t.reg.current
	child := target.right
	target.setRight(version, child.left)
	switch {
	case targetParent == nil:
		t.reg.installRoot(child)
	case targetParent.left == target:
		targetParent.setLeft(version, child)
	default:
		targetParent.setRight(version, child)
	}
	child.setLeft(version, target)
}

func (t *Tree[K, V]) rotateRight(target, targetParent *Node[K, V]) {
	version := t.reg.current
	child := target.left
	target.setLeft(version, child.right)
	switch {
	case targetParent == nil:
		t.reg.installRoot(child)
	case targetParent.left == target:
		targetParent.setLeft(version, child)
	default:
		targetParent.setRight(version, child)
	}
	child.setRight(version, target)
}

// buildPath returns the chain of ancestors from the root down to (but not
// including) to, with a nil sentinel standing in for the root's own parent
// at index 0. Used instead of parent pointers on Node so that structural
// sharing is not broken by back-links.
func (t *Tree[K, V]) buildPath(to *Node[K, V]) []*Node[K, V] {
	path := []*Node[K, V]{nil}
	node := t.reg.currentRoot()
	for node != nil && node.key != to.key {
		path = append(path, node)
		if to.key < node.key {
			node = node.left
		} else {
			node = node.right
		}
	}
	if node == nil {
		return nil
	}
	return path
}
