package crossing

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

func statusItems(s *sweepStatus) []*sweepItem {
	items := []*sweepItem{}
	for n := s.First(); n != nil; n = n.Next() {
		items = append(items, n.sweepItem)
	}
	return items
}

func checkStatus(t *testing.T, s *sweepStatus) {
	t.Helper()
	var walk func(n *statusNode) int
	walk = func(n *statusNode) int {
		if n == nil {
			return 0
		}
		if n.left != nil && n.left.parent != n || n.right != nil && n.right.parent != n {
			t.Fatalf("bad parent pointer at %v", n.sweepItem)
		}
		if n.sweepItem.node != n {
			t.Fatalf("bad node pointer at %v", n.sweepItem)
		}
		l, r := walk(n.left), walk(n.right)
		if r-l < -1 || 1 < r-l {
			t.Fatalf("unbalanced at %v", n.sweepItem)
		}
		h := max(l, r) + 1
		if n.height != h {
			t.Fatalf("bad height at %v: %d != %d", n.sweepItem, n.height, h)
		}
		return h
	}
	walk(s.root)

	var prev *statusNode
	for n := s.First(); n != nil; n = n.Next() {
		if prev != nil {
			test.That(t, s.compare(prev.sweepItem, n.sweepItem) < 0, prev.sweepItem, n.sweepItem)
			test.That(t, n.Prev() == prev)
		}
		prev = n
	}
	if s.root != nil {
		test.That(t, prev == s.root.last())
	}
}

func TestSweepStatus(t *testing.T) {
	line := NewSweepLine(0)
	s := newSweepStatus(line)
	test.That(t, s.First() == nil)

	items := []*sweepItem{}
	for i := 0; i < 10; i++ {
		y := 10 * ((i * 7) % 10)
		items = append(items, &sweepItem{Segment: MustSegment(-10, y, 10, y+1), index: i})
	}
	for _, item := range items {
		test.That(t, s.Insert(item) == item.node)
		checkStatus(t, s)
	}
	test.T(t, len(statusItems(s)), 10)
	test.T(t, s.First().Segment.A.Y, 0)
	test.T(t, s.root.last().Segment.A.Y, 90)

	// ties on the sweep line are ordered by slope
	line.SetX(10)
	tie := &sweepItem{Segment: MustSegment(0, 11, 20, 11), index: 10}
	s.Insert(tie)
	checkStatus(t, s)
	test.That(t, tie.node.Prev().sweepItem == items[0])
	test.That(t, tie.node.Next().sweepItem == items[3])
	s.Remove(tie.node)
	test.That(t, tie.node == nil)
	line.SetX(0)

	// an item is inserted only once
	func() {
		defer func() {
			test.That(t, recover() != nil)
		}()
		s.Insert(&sweepItem{Segment: items[0].Segment, index: items[0].index})
	}()

	for i, item := range items {
		s.Remove(item.node)
		test.That(t, item.node == nil)
		test.T(t, len(statusItems(s)), 9-i)
		checkStatus(t, s)
	}
	test.That(t, s.root == nil)
}

func TestSweepStatusRandom(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		t.Run(fmt.Sprint(seed), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(seed, seed))
			line := NewSweepLine(0)
			s := newSweepStatus(line)

			items := []*sweepItem{}
			for i := 0; i < 100; i++ {
				y0, y1 := rng.IntN(200)-100, rng.IntN(200)-100
				item := &sweepItem{Segment: MustSegment(-100, y0, 100, y1), index: i}
				items = append(items, item)
				s.Insert(item)
			}
			checkStatus(t, s)
			test.T(t, len(statusItems(s)), 100)

			rng.Shuffle(len(items), func(i, j int) {
				items[i], items[j] = items[j], items[i]
			})
			for i, item := range items[:50] {
				s.Remove(item.node)
				if i%10 == 0 {
					checkStatus(t, s)
				}
			}
			checkStatus(t, s)
			test.T(t, len(statusItems(s)), 50)
		})
	}
}
