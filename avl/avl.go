// Package avl implements a height-balanced binary search tree of ordered
// values.
//
// The tree is an ordered set: duplicates are never stored, and every
// operation is O(log n). After any mutation the AVL invariant holds: the
// heights of the two subtrees of any node differ by at most one.
package avl

import "golang.org/x/exp/constraints"

type node[T constraints.Ordered] struct {
	value       T
	left, right *node[T]
	// height is 1 for a leaf; the empty subtree has height 0 by convention.
	height int
}

// Tree is an ordered set of values backed by an AVL tree. The zero value is
// an empty tree ready to use. It is not safe to use a Tree concurrently.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

// New creates an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

func height[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[T]) update() {
	n.height = 1 + max(height(n.left), height(n.right))
}

// balance is height(left) - height(right); an AVL node keeps this in
// {-1, 0, +1}.
func balance[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rotateRight promotes x's left child. Heights are recomputed for x first,
// then the new root, since x becomes the child.
func rotateRight[T constraints.Ordered](x *node[T]) *node[T] {
	y := x.left
	x.left = y.right
	x.update()
	y.right = x
	y.update()
	return y
}

func rotateLeft[T constraints.Ordered](x *node[T]) *node[T] {
	y := x.right
	x.right = y.left
	x.update()
	y.left = x
	y.update()
	return y
}

// rebalance recomputes n's height and applies at most two rotations to
// restore the AVL invariant at n. On a zero child balance factor the single
// rotation is taken, which is the sufficient choice after deletion.
func rebalance[T constraints.Ordered](n *node[T]) *node[T] {
	n.update()
	switch bf := balance(n); {
	case bf > 1:
		if balance(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if balance(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

// Insert adds v to the set. Inserting a value already present is a no-op.
func (t *Tree[T]) Insert(v T) {
	root, inserted := insert(t.root, v)
	t.root = root
	if inserted {
		t.size++
	}
}

func insert[T constraints.Ordered](n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return &node[T]{value: v, height: 1}, true
	}
	var inserted bool
	switch {
	case v < n.value:
		n.left, inserted = insert(n.left, v)
	case v > n.value:
		n.right, inserted = insert(n.right, v)
	default:
		return n, false
	}
	if inserted {
		n = rebalance(n)
	}
	return n, inserted
}

// Remove deletes v from the set and reports whether it was present.
func (t *Tree[T]) Remove(v T) bool {
	root, removed := remove(t.root, v)
	t.root = root
	if removed {
		t.size--
	}
	return removed
}

func remove[T constraints.Ordered](n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case v < n.value:
		n.left, removed = remove(n.left, v)
	case v > n.value:
		n.right, removed = remove(n.right, v)
	default:
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			// Two children: promote the in-order successor's value and
			// splice its node out of the right subtree.
			min, right := extractMin(n.right)
			n.value = min
			n.right = right
			return rebalance(n), true
		}
	}
	if removed {
		n = rebalance(n)
	}
	return n, removed
}

// extractMin unlinks the leftmost node and rebalances back up the extraction
// path.
func extractMin[T constraints.Ordered](n *node[T]) (T, *node[T]) {
	if n.left == nil {
		return n.value, n.right
	}
	min, left := extractMin(n.left)
	n.left = left
	return min, rebalance(n)
}

// Contains reports whether v is in the set.
func (t *Tree[T]) Contains(v T) bool {
	n := t.root
	for n != nil {
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of values in the set.
func (t *Tree[T]) Len() int {
	return t.size
}

// IsEmpty reports whether the set holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Height returns the height of the tree, 0 if empty.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Clear returns the tree to the empty state.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Min returns the smallest value in the set, or false if the set is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value in the set, or false if the set is empty.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// InOrder calls fn for each value in ascending order, stopping early if fn
// returns false.
func (t *Tree[T]) InOrder(fn func(T) bool) {
	inorder(t.root, fn)
}

func inorder[T constraints.Ordered](n *node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, fn) && fn(n.value) && inorder(n.right, fn)
}

// IsBalanced recomputes subtree heights bottom-up and reports whether the
// AVL invariant holds everywhere. It ignores the cached heights, so it
// remains a valid check even if they are wrong.
func (t *Tree[T]) IsBalanced() bool {
	_, ok := checkBalanced(t.root)
	return ok
}

func checkBalanced[T constraints.Ordered](n *node[T]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := checkBalanced(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalanced(n.right)
	if !ok {
		return 0, false
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}
