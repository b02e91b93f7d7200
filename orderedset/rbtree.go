package orderedset

import "github.com/katalvlaran/bmssp/key"

type color bool

const (
	red   color = true
	black color = false
)

// node is a red-black tree node. Every live node's left/right/parent
// point at either another live node or the shared nil sentinel; the
// sentinel itself is never a key holder (value is the zero Key).
type node struct {
	value               key.Key
	color               color
	left, right, parent *node
}

// Set is a dynamic, totally-ordered set of key.Key values.
//
// The zero value is not usable; construct with New.
type Set struct {
	nilNode *node // shared black sentinel leaf
	root    *node
	size    int
}

// New returns an empty ordered set.
func New() *Set {
	nilNode := &node{color: black}
	nilNode.left, nilNode.right, nilNode.parent = nilNode, nilNode, nilNode
	return &Set{nilNode: nilNode, root: nilNode}
}

// Len returns the number of elements currently in the set.
func (s *Set) Len() int {
	return s.size
}

// Contains reports whether v is a member of the set.
//
// Complexity: O(log n).
func (s *Set) Contains(v key.Key) bool {
	return s.find(v) != s.nilNode
}

func (s *Set) find(v key.Key) *node {
	n := s.root
	for n != s.nilNode {
		if v == n.value {
			return n
		}
		if key.Less(v, n.value) {
			n = n.left
		} else {
			n = n.right
		}
	}
	return s.nilNode
}

// Min returns the smallest element and true, or the zero Key and false if
// the set is empty.
//
// Complexity: O(log n).
func (s *Set) Min() (key.Key, bool) {
	if s.root == s.nilNode {
		return key.Key{}, false
	}
	return s.minNode(s.root).value, true
}

// Max returns the largest element and true, or the zero Key and false if
// the set is empty.
//
// Complexity: O(log n).
func (s *Set) Max() (key.Key, bool) {
	if s.root == s.nilNode {
		return key.Key{}, false
	}
	return s.maxNode(s.root).value, true
}

func (s *Set) minNode(n *node) *node {
	for n.left != s.nilNode {
		n = n.left
	}
	return n
}

func (s *Set) maxNode(n *node) *node {
	for n.right != s.nilNode {
		n = n.right
	}
	return n
}

// StrictUpperBound returns the least element strictly greater than v, and
// true, or the zero Key and false if no such element exists.
//
// Complexity: O(log n).
func (s *Set) StrictUpperBound(v key.Key) (key.Key, bool) {
	n := s.root
	var candidate *node
	for n != s.nilNode {
		if key.Less(v, n.value) {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if candidate == nil {
		return key.Key{}, false
	}
	return candidate.value, true
}

// InOrder returns every element of the set in ascending order.
//
// Complexity: O(n).
func (s *Set) InOrder() []key.Key {
	out := make([]key.Key, 0, s.size)
	var walk func(n *node)
	walk = func(n *node) {
		if n == s.nilNode {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(s.root)
	return out
}

// Insert adds v to the set. Re-inserting a value already present is a
// no-op (the ordered set never holds duplicates — spec.md §4.1 assumes
// distinct bound keys).
//
// Complexity: O(log n).
func (s *Set) Insert(v key.Key) {
	if s.Contains(v) {
		return
	}

	z := &node{value: v, color: red, left: s.nilNode, right: s.nilNode}
	var y *node = s.nilNode
	x := s.root
	for x != s.nilNode {
		y = x
		if key.Less(z.value, x.value) {
			x = x.left
		} else {
			x = x.right
		}
	}
	z.parent = y
	switch {
	case y == s.nilNode:
		s.root = z
	case key.Less(z.value, y.value):
		y.left = z
	default:
		y.right = z
	}
	s.size++
	s.insertFixup(z)
}

func (s *Set) insertFixup(z *node) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right // uncle
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					s.rotateLeft(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				s.rotateRight(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left // uncle
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					s.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				s.rotateLeft(z.parent.parent)
			}
		}
	}
	s.root.color = black
}

// Delete removes v from the set. Deleting an absent value is a silent
// no-op (spec.md §4.1).
//
// Complexity: O(log n).
func (s *Set) Delete(v key.Key) {
	z := s.find(v)
	if z == s.nilNode {
		return
	}
	s.size--

	y := z
	yOriginalColor := y.color
	var x *node
	switch {
	case z.left == s.nilNode:
		x = z.right
		s.transplant(z, z.right)
	case z.right == s.nilNode:
		x = z.left
		s.transplant(z, z.left)
	default:
		y = s.minNode(z.right)
		yOriginalColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			s.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		s.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	if yOriginalColor == black {
		s.deleteFixup(x)
	}
}

func (s *Set) transplant(u, v *node) {
	switch {
	case u.parent == s.nilNode:
		s.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

func (s *Set) deleteFixup(x *node) {
	for x != s.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				s.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					s.rotateRight(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				s.rotateLeft(x.parent)
				x = s.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				s.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					s.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				s.rotateRight(x.parent)
				x = s.root
			}
		}
	}
	x.color = black
}

func (s *Set) rotateLeft(x *node) {
	y := x.right
	x.right = y.left
	if y.left != s.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == s.nilNode:
		s.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (s *Set) rotateRight(x *node) {
	y := x.left
	x.left = y.right
	if y.right != s.nilNode {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == s.nilNode:
		s.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}
