package event

// Queue is a slice-backed Sink. The emulator's input handler drains it
// once per frame; events come back in the exact order they were posted.
type Queue struct {
	events []Event
}

// Post appends an event. Implements Sink.
func (q *Queue) Post(ev Event) {
	q.events = append(q.events, ev)
}

// Drain returns all queued events in emission order and empties the
// queue. The returned slice is owned by the caller.
func (q *Queue) Drain() []Event {
	evs := q.events
	q.events = nil
	return evs
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}
