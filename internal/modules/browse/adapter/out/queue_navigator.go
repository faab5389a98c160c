package out

import "sync"

// QueueNavigator buffers fragment writes until the event loop drains them
// and feeds each one back as a fragment change.
type QueueNavigator struct {
	mu      sync.Mutex
	pending []string
}

func NewQueueNavigator() *QueueNavigator {
	return &QueueNavigator{}
}

func (q *QueueNavigator) Navigate(fragment string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, fragment)
}

// Drain returns the buffered writes in order and empties the queue.
func (q *QueueNavigator) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}
