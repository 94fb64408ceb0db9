package crossing

import (
	"fmt"
	"sync"
)

// sweepItem is a segment crossing the sweep line.
type sweepItem struct {
	Segment
	index int        // index of the segment in the input
	node  *statusNode // current tree node, nil when not on the sweep line
}

func (s *sweepItem) String() string {
	return fmt.Sprintf("%d: %v", s.index, s.Segment)
}

type statusNode struct {
	parent, left, right *statusNode
	height              int

	*sweepItem
}

// Prev returns the node below n on the sweep line, or nil.
func (n *statusNode) Prev() *statusNode {
	if n.left != nil {
		return n.left.last()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// Next returns the node above n on the sweep line, or nil.
func (n *statusNode) Next() *statusNode {
	if n.right != nil {
		return n.right.first()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

func (n *statusNode) first() *statusNode {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *statusNode) last() *statusNode {
	for n.right != nil {
		n = n.right
	}
	return n
}

func heightOf(n *statusNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

// skew is positive when the right subtree is higher.
func (n *statusNode) skew() int {
	return heightOf(n.right) - heightOf(n.left)
}

func (n *statusNode) fixHeight() {
	n.height = max(heightOf(n.left), heightOf(n.right)) + 1
}

// replaceChild makes c take the place of child old.
func (n *statusNode) replaceChild(old, c *statusNode) {
	if n.left == old {
		n.left = c
	} else {
		n.right = c
	}
	if c != nil {
		c.parent = n
	}
}

// rotate lifts the child c of n into the place of n and returns c.
func (n *statusNode) rotate(c *statusNode) *statusNode {
	if p := n.parent; p != nil {
		p.replaceChild(n, c)
	} else {
		c.parent = nil
	}
	if n.right == c {
		if n.right = c.left; n.right != nil {
			n.right.parent = n
		}
		c.left = n
	} else {
		if n.left = c.right; n.left != nil {
			n.left.parent = n
		}
		c.right = n
	}
	n.parent = c
	n.fixHeight()
	c.fixHeight()
	return c
}

// sweepStatus holds the segments crossing the sweep line in an AVL tree, ordered bottom to top. The order depends on the position of line, so that segments must be removed and reinserted when the line moves past their crossing.
type sweepStatus struct {
	root *statusNode
	line *SweepLine
	pool *sync.Pool
}

func newSweepStatus(line *SweepLine) *sweepStatus {
	return &sweepStatus{
		line: line,
		pool: &sync.Pool{New: func() any { return &statusNode{} }},
	}
}

func (s *sweepStatus) compare(a, b *sweepItem) int {
	if cmp := s.line.Compare(a.Segment, b.Segment); cmp != 0 {
		return cmp
	}
	return cmpInt64(int64(a.index), int64(b.index))
}

// First returns the lowest node, or nil.
func (s *sweepStatus) First() *statusNode {
	if s.root == nil {
		return nil
	}
	return s.root.first()
}

// Insert adds item at its position on the sweep line.
func (s *sweepStatus) Insert(item *sweepItem) *statusNode {
	n := s.pool.Get().(*statusNode)
	*n = statusNode{height: 1, sweepItem: item}
	item.node = n
	if s.root == nil {
		s.root = n
		return n
	}

	p := s.root
	for {
		cmp := s.compare(item, p.sweepItem)
		if cmp == 0 {
			panic(fmt.Sprintf("bug: %v is already on the sweep line", item))
		}
		next := &p.right
		if cmp < 0 {
			next = &p.left
		}
		if *next == nil {
			*next = n
			n.parent = p
			break
		}
		p = *next
	}
	s.rebalance(p)
	return n
}

// Remove removes node n without comparing items, so that it works after the sweep line moved.
func (s *sweepStatus) Remove(n *statusNode) {
	// move the item down to a leaf by swapping with its in-order neighbour
	for n.left != nil || n.right != nil {
		var o *statusNode
		if n.right != nil {
			o = n.right.first()
		} else {
			o = n.left.last()
		}
		n.sweepItem, o.sweepItem = o.sweepItem, n.sweepItem
		n.sweepItem.node, o.sweepItem.node = n, o
		n = o
	}

	if p := n.parent; p != nil {
		p.replaceChild(n, nil)
		s.rebalance(p)
	} else {
		s.root = nil
	}
	n.sweepItem.node = nil
	n.sweepItem = nil
	s.pool.Put(n)
}

// rebalance restores heights and balance from n up to the root.
func (s *sweepStatus) rebalance(n *statusNode) {
	for n != nil {
		switch skew := n.skew(); {
		case 1 < skew:
			if n.right.skew() < 0 {
				n.right.rotate(n.right.left)
			}
			n = n.rotate(n.right)
		case skew < -1:
			if 0 < n.left.skew() {
				n.left.rotate(n.left.right)
			}
			n = n.rotate(n.left)
		default:
			n.fixHeight()
		}
		if n.parent == nil {
			s.root = n
		}
		n = n.parent
	}
}
