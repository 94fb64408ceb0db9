package crossing

import (
	"fmt"
	"strings"
)

// crossingEvent is a future crossing point of segments that were adjacent on the sweep status.
type crossingEvent struct {
	ratPoint
	items []*sweepItem
}

func (ev *crossingEvent) has(item *sweepItem) bool {
	for _, i := range ev.items {
		if i == item {
			return true
		}
	}
	return false
}

func (ev *crossingEvent) add(item *sweepItem) {
	if !ev.has(item) {
		ev.items = append(ev.items, item)
	}
}

func (ev *crossingEvent) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "(%d/%d,%d/%d):", ev.X, ev.D, ev.Y, ev.D)
	for _, item := range ev.items {
		fmt.Fprintf(&sb, " %d", item.index)
	}
	return sb.String()
}

// crossingQueue is a heap priority queue of pending crossings, ordered left to right.
type crossingQueue []*crossingEvent

func (q crossingQueue) Less(i, j int) bool {
	return q[i].compare(q[j].ratPoint) < 0
}

func (q crossingQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *crossingQueue) Push(item *crossingEvent) {
	*q = append(*q, item)
	q.up(len(*q) - 1)
}

func (q *crossingQueue) Pop() *crossingEvent {
	n := len(*q) - 1
	q.Swap(0, n)
	q.down(0, n)

	item := (*q)[n]
	(*q)[n] = nil
	*q = (*q)[:n]
	return item
}

// from container/heap
func (q crossingQueue) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		j = i
	}
}

func (q crossingQueue) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.Less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		i = j
	}
}

type itemPair struct {
	a, b int
}

// sweeper holds the state of a single Bentley-Ottmann run.
type sweeper struct {
	report    []Segment // segments recorded in the result, indexed like the swept segments
	line      *SweepLine
	status    *sweepStatus
	pending   crossingQueue
	scheduled map[ratPoint]*crossingEvent
	handled   map[itemPair]bool // prevent testing for intersections more than once
	zs        *IntersectionSet
}

// ahead returns true if p lies strictly to the right of the sweep line.
func (s *sweeper) ahead(p ratPoint) bool {
	return s.line.num*p.D < p.X*s.line.den
}

// check tests a pair of segments that are adjacent on the sweep status, records their intersection and schedules their crossing if it is to the right of the sweep line.
func (s *sweeper) check(a, b *sweepItem) {
	pair := itemPair{a.index, b.index}
	if b.index < a.index {
		pair = itemPair{b.index, a.index}
	}
	if s.handled[pair] {
		return
	}
	s.handled[pair] = true

	p, ok := a.crossing(b.Segment)
	if !ok {
		return
	}
	s.zs.AddPair(p.Snap(), s.report[a.index], s.report[b.index])
	if !s.ahead(p) {
		// at or left of the sweep line the status order already accounts for the crossing
		return
	}

	ev, ok := s.scheduled[p]
	if !ok {
		ev = &crossingEvent{ratPoint: p}
		s.scheduled[p] = ev
		s.pending.Push(ev)
	}
	ev.add(a)
	ev.add(b)
}

// checkRuns tests all pairs between the run of collinear segments ending at lower and the run starting at upper, which are adjacent on the sweep line.
func (s *sweeper) checkRuns(lower, upper *statusNode) {
	for a := lower; a != nil && a.Collinear(lower.Segment); a = a.Prev() {
		for b := upper; b != nil && b.Collinear(upper.Segment); b = b.Next() {
			s.check(a.sweepItem, b.sweepItem)
		}
	}
}

// checkNeighbours tests the segments collinear with n against their neighbours below and above. Overlapping collinear segments tie on the sweep line, so that a crossing segment is adjacent to only one of them.
func (s *sweeper) checkNeighbours(n *statusNode) {
	lo, hi := n, n
	for prev := lo.Prev(); prev != nil && prev.Collinear(n.Segment); prev = lo.Prev() {
		lo = prev
	}
	for next := hi.Next(); next != nil && next.Collinear(n.Segment); next = hi.Next() {
		hi = next
	}
	if prev := lo.Prev(); prev != nil {
		s.checkRuns(prev, lo)
	}
	if next := hi.Next(); next != nil {
		s.checkRuns(hi, next)
	}
}

// cross moves the sweep line to a crossing and reorders the segments passing through it.
func (s *sweeper) cross(ev *crossingEvent) {
	// remove in the old order, the line must not move before all are removed
	for _, item := range ev.items {
		if item.node != nil {
			s.status.Remove(item.node)
		}
	}
	s.line.setRat(ev.X, ev.D)
	for _, item := range ev.items {
		s.status.Insert(item)
	}
	for _, item := range ev.items {
		s.checkNeighbours(item.node)
	}
}

// bentleyOttmann finds all intersections between segments by sweeping a vertical line from left to right, in O((n+k) log n) for n segments and k intersections. Segments must not share endpoints. Intersections are reported with the segments from report at the same index.
func bentleyOttmann(segments, report []Segment) (*IntersectionSet, error) {
	// - M. de Berg, et al. "Computational Geometry", Chapter 2, DOI: 10.1007/978-3-540-77974-2
	queue, err := NewEventQueue(segments)
	if err != nil {
		return nil, err
	}

	line := NewSweepLine(0)
	s := &sweeper{
		report:    report,
		line:      line,
		status:    newSweepStatus(line),
		scheduled: map[ratPoint]*crossingEvent{},
		handled:   map[itemPair]bool{},
		zs:        NewIntersectionSet(),
	}
	items := make([]sweepItem, len(segments))
	for i := range segments {
		items[i] = sweepItem{Segment: segments[i], index: i}
	}

	for event := queue.Pop(); !event.Empty(); event = queue.Pop() {
		// handle crossings up to and including the event's X coordinate
		x := int64(event.Pos().X)
		for 0 < len(s.pending) && s.pending[0].X <= x*s.pending[0].D {
			ev := s.pending.Pop()
			delete(s.scheduled, ev.ratPoint)
			s.cross(ev)
		}

		line.SetX(event.Pos().X)
		item := &items[event.Index]
		if event.Left {
			// add segment to sweep status
			s.checkNeighbours(s.status.Insert(item))
		} else if item.node != nil {
			// remove segment from sweep status, its neighbours become adjacent
			var prev, next *sweepItem
			if n := item.node.Prev(); n != nil {
				prev = n.sweepItem
			}
			if n := item.node.Next(); n != nil {
				next = n.sweepItem
			}
			s.status.Remove(item.node)
			if prev != nil && next != nil {
				s.checkRuns(prev.node, next.node)
			}
		}
	}
	return s.zs, nil
}
