package ranktree

// insertFixup restores the red-black invariants after a red leaf has been
// attached under parent. Every node on the path from the root to fixNode
// has already been cloned into the current version by the caller; the
// uncle encountered on each iteration has not, and is cloned here before
// any write.
func (t *Tree[K, V]) insertFixup(fixNode *Node[K, V]) {
	version := t.reg.current
	parents := t.buildPath(fixNode)
	getParent := func() *Node[K, V] { return parents[len(parents)-1] }
	getGrandParent := func() *Node[K, V] { return parents[len(parents)-2] }

	for getParent() != nil && getParent().isRed() {
		if getParent() == getGrandParent().left {
			uncle := getGrandParent().right
			if uncle.isRed() {
				getParent().setColor(version, black)
				cloned := uncle.clone(version)
				getGrandParent().setRight(version, cloned)
				cloned.setColor(version, black)
				getGrandParent().setColor(version, red)
				fixNode = getGrandParent()
				parents = parents[:len(parents)-2]
				continue
			}

			if fixNode == getParent().right {
				fixNode = getParent()
				parents = parents[:len(parents)-1]
				cloned := fixNode.right.clone(version)
				fixNode.setRight(version, cloned)
				t.rotateLeft(fixNode, getParent())
				parents = append(parents, cloned)
			}

			getParent().setColor(version, black)
			getGrandParent().setColor(version, red)
			cloned := getGrandParent().left.clone(version)
			getGrandParent().setLeft(version, cloned)
			grandParentOfGrandParent := parents[len(parents)-3]
			t.rotateRight(getGrandParent(), grandParentOfGrandParent)
			parents = append(parents, cloned)
		} else {
			uncle := getGrandParent().left
			if uncle.isRed() {
				getParent().setColor(version, black)
				cloned := uncle.clone(version)
				getGrandParent().setLeft(version, cloned)
				cloned.setColor(version, black)
				getGrandParent().setColor(version, red)
				fixNode = getGrandParent()
				parents = parents[:len(parents)-2]
				continue
			}

			if fixNode == getParent().left {
				fixNode = getParent()
				parents = parents[:len(parents)-1]
				cloned := fixNode.left.clone(version)
				fixNode.setLeft(version, cloned)
				t.rotateRight(fixNode, getParent())
				parents = append(parents, cloned)
			}

			getParent().setColor(version, black)
			getGrandParent().setColor(version, red)
			cloned := getGrandParent().right.clone(version)
			getGrandParent().setRight(version, cloned)
			grandParentOfGrandParent := parents[len(parents)-3]
			t.rotateLeft(getGrandParent(), grandParentOfGrandParent)
			parents = append(parents, cloned)
		}
	}

	t.reg.currentRoot().setColor(version, black)
}

// deleteFixup restores the red-black invariants after a black node has been
// removed from the tree. fixNode is the node now occupying the deleted
// node's position (nil if that position is empty), and parentForNil is its
// parent, used to locate the sibling when fixNode itself is nil.
func (t *Tree[K, V]) deleteFixup(fixNode, parentForNil *Node[K, V]) {
	version := t.reg.current

	var parents []*Node[K, V]
	if fixNode != nil {
		parents = t.buildPath(fixNode)
	} else {
		parents = t.buildPath(parentForNil)
		parents = append(parents, parentForNil)
	}
	getParent := func() *Node[K, V] { return parents[len(parents)-1] }
	getGrandParent := func() *Node[K, V] { return parents[len(parents)-2] }

	for fixNode != t.reg.currentRoot() && !fixNode.isRed() {
		if fixNode == getParent().left {
			sibling := getParent().right
			if sibling.isRed() {
				cloned := getParent().right.clone(version)
				getParent().setRight(version, cloned)
				sibling = cloned
				sibling.setColor(version, black)
				getParent().setColor(version, red)
				t.rotateLeft(getParent(), getGrandParent())

				parent := parents[len(parents)-1]
				parents = parents[:len(parents)-1]
				parents = append(parents, sibling, parent)
				sibling = getParent().right
			}

			if !sibling.left.isRed() && !sibling.right.isRed() {
				cloned := getParent().right.clone(version)
				getParent().setRight(version, cloned)
				cloned.setColor(version, red)
				fixNode = getParent()
				parents = parents[:len(parents)-1]
			} else {
				if !sibling.right.isRed() {
					cloned := getParent().right.clone(version)
					getParent().setRight(version, cloned)
					sibling = cloned
					clonedLeft := sibling.left.clone(version)
					sibling.setLeft(version, clonedLeft)
					clonedLeft.setColor(version, black)
					sibling.setColor(version, red)
					t.rotateRight(sibling, getParent())
					sibling = getParent().right
				}

				cloned := getParent().right.clone(version)
				getParent().setRight(version, cloned)
				sibling = cloned
				clonedRight := sibling.right.clone(version)
				sibling.setRight(version, clonedRight)
				sibling.setColor(version, color(getParent().isRed()))
				getParent().setColor(version, black)
				clonedRight.setColor(version, black)
				t.rotateLeft(getParent(), getGrandParent())

				parent := parents[len(parents)-1]
				parents = parents[:len(parents)-1]
				parents = append(parents, sibling, parent)
				fixNode = t.reg.currentRoot()
			}
		} else {
			sibling := getParent().left
			if sibling.isRed() {
				cloned := getParent().left.clone(version)
				getParent().setLeft(version, cloned)
				sibling = cloned
				sibling.setColor(version, black)
				getParent().setColor(version, red)
				t.rotateRight(getParent(), getGrandParent())

				parent := parents[len(parents)-1]
				parents = parents[:len(parents)-1]
				parents = append(parents, sibling, parent)
				sibling = getParent().left
			}

			if !sibling.left.isRed() && !sibling.right.isRed() {
				cloned := getParent().left.clone(version)
				getParent().setLeft(version, cloned)
				cloned.setColor(version, red)
				fixNode = getParent()
				parents = parents[:len(parents)-1]
			} else {
				if !sibling.left.isRed() {
					cloned := getParent().left.clone(version)
					getParent().setLeft(version, cloned)
					sibling = cloned
					clonedRight := sibling.right.clone(version)
					sibling.setRight(version, clonedRight)
					clonedRight.setColor(version, black)
					sibling.setColor(version, red)
					t.rotateLeft(sibling, getParent())
					sibling = getParent().left
				}

				cloned := getParent().left.clone(version)
				getParent().setLeft(version, cloned)
				sibling = cloned
				clonedLeft := sibling.left.clone(version)
				sibling.setLeft(version, clonedLeft)
				sibling.setColor(version, color(getParent().isRed()))
				getParent().setColor(version, black)
				clonedLeft.setColor(version, black)
				t.rotateRight(getParent(), getGrandParent())

				parent := parents[len(parents)-1]
				parents = parents[:len(parents)-1]
				parents = append(parents, sibling, parent)
				fixNode = t.reg.currentRoot()
			}
		}
	}

	fixNode.setColor(version, black)
}
