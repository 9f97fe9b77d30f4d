package operator

import (
	"sync"
)

// queue is an unbounded FIFO. push never blocks.
type queue struct {
	mutex  sync.Mutex
	cond   *sync.Cond
	items  []ActionItem
	closed bool
}

func newQueue() *queue {
	q := &queue{}
	q.cond = sync.NewCond(&q.mutex)
	return q
}

// push reports false when the queue is already closed.
func (q *queue) push(items ...ActionItem) bool {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, items...)
	q.cond.Broadcast()
	return true
}

// pop blocks until an item is available or the queue is closed.
func (q *queue) pop() (ActionItem, bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if q.closed {
		return ActionItem{}, false
	}
	item := q.items[0]
	q.items[0] = ActionItem{}
	q.items = q.items[1:]
	return item, true
}

// close wakes every waiter and returns the items that were never popped.
func (q *queue) close() []ActionItem {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.closed = true
	dropped := q.items
	q.items = nil
	q.cond.Broadcast()
	return dropped
}
