package crossing

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ErrDuplicateEndpoint is returned when two segments share an endpoint location, which the sweep does not support.
var ErrDuplicateEndpoint = errors.New("invalid input: duplicate endpoint location")

// Event is an endpoint of a segment that is processed when the sweep line reaches it. Events are equal when they refer to the same endpoint of the same input segment, but they are ordered by location only.
type Event struct {
	Segment
	Index int  // index of the segment in the input
	Left  bool // event is the lower (left) endpoint of the segment
}

// EmptyEvent is returned by an exhausted EventQueue.
var EmptyEvent = Event{Index: -1}

// Empty returns true for EmptyEvent.
func (e Event) Empty() bool {
	return e.Index < 0
}

// Pos returns the location of the event.
func (e Event) Pos() Point {
	if e.Left {
		return e.A
	}
	return e.B
}

// Other returns the location of the other endpoint of the segment.
func (e Event) Other() Point {
	if e.Left {
		return e.B
	}
	return e.A
}

// Compare orders events by location only.
func (e Event) Compare(f Event) int {
	return e.Pos().Compare(f.Pos())
}

// less is the total order of the event queue: by location, then left endpoints before right endpoints, then longest segment first.
func (e Event) less(f Event) bool {
	if cmp := e.Compare(f); cmp != 0 {
		return cmp < 0
	} else if e.Left != f.Left {
		return e.Left
	}
	ed, fd := e.B.Sub(e.A), f.B.Sub(f.A)
	if el, fl := ed.Dot(ed), fd.Dot(fd); el != fl {
		return fl < el
	}
	return e.Index < f.Index
}

func (e Event) String() string {
	if e.Empty() {
		return "empty"
	}
	side := "right"
	if e.Left {
		side = "left"
	}
	return fmt.Sprintf("%s(%d: %v)", side, e.Index, e.Segment)
}

// EventQueue is the sorted sequence of segment endpoints of one sweep.
type EventQueue struct {
	events []Event
	i      int
}

// NewEventQueue returns the events of the segments in increasing order. It returns ErrDuplicateEndpoint if any two endpoints share a location.
func NewEventQueue(segments []Segment) (*EventQueue, error) {
	q := SortEvents(segments)
	for i := 1; i < len(q.events); i++ {
		if q.events[i-1].Compare(q.events[i]) == 0 {
			return nil, fmt.Errorf("%w: %v of segment %d and %v of segment %d", ErrDuplicateEndpoint, q.events[i-1].Pos(), q.events[i-1].Index, q.events[i].Pos(), q.events[i].Index)
		}
	}
	return q, nil
}

// SortEvents returns the events of the segments in increasing order without checking for shared endpoints.
func SortEvents(segments []Segment) *EventQueue {
	events := make([]Event, 0, 2*len(segments))
	for i, s := range segments {
		events = append(events, Event{s, i, true}, Event{s, i, false})
	}
	slices.SortFunc(events, func(a, b Event) int {
		if a.less(b) {
			return -1
		} else if b.less(a) {
			return 1
		}
		return 0
	})
	return &EventQueue{events: events}
}

// Len returns the number of remaining events.
func (q *EventQueue) Len() int {
	return len(q.events) - q.i
}

// Peek returns the next event without removing it, or EmptyEvent.
func (q *EventQueue) Peek() Event {
	if len(q.events) <= q.i {
		return EmptyEvent
	}
	return q.events[q.i]
}

// Pop removes and returns the next event, or EmptyEvent when the queue is exhausted.
func (q *EventQueue) Pop() Event {
	e := q.Peek()
	if !e.Empty() {
		q.i++
	}
	return e
}

func (q *EventQueue) Print(w io.Writer) {
	for i, e := range q.events[q.i:] {
		fmt.Fprintln(w, i, e)
	}
}

func (q *EventQueue) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}
