package native

import "sync"

// Queue is an unbounded FIFO of events. Producers may push from any
// goroutine; a single consumer waits on it.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []Event
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// PushEvent appends ev and wakes a waiting consumer.
func (q *Queue) PushEvent(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
	q.cond.Signal()
}

// WaitEvent blocks until an event is available and removes it.
func (q *Queue) WaitEvent() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.events) == 0 {
		q.cond.Wait()
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev
}

// TakeMotion removes and returns the run of motion events at the head of
// the queue. It stops at the first event of any other kind so button
// events keep their order relative to the motion around them.
func (q *Queue) TakeMotion() []Motion {
	q.mu.Lock()
	defer q.mu.Unlock()
	var taken []Motion
	n := 0
	for _, ev := range q.events {
		m, ok := ev.(Motion)
		if !ok {
			break
		}
		taken = append(taken, m)
		n++
	}
	for i := 0; i < n; i++ {
		q.events[i] = nil
	}
	q.events = q.events[n:]
	return taken
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
