package engine

import (
	"container/heap"
	"time"
)

// timer is a deferred effect. Implementations carry the snapshot they need
// instead of reading live state captured at a later time.
type timer interface {
	fire(s *Session)
}

type scheduledTimer struct {
	at    time.Duration
	seq   uint64
	t     timer
	index int
}

// timerQueue orders timers by fire time, then by scheduling order.
type timerQueue []*scheduledTimer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	item := x.(*scheduledTimer)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

type scheduler struct {
	queue timerQueue
	seq   uint64
}

func (s *scheduler) schedule(at time.Duration, t timer) {
	s.seq++
	heap.Push(&s.queue, &scheduledTimer{at: at, seq: s.seq, t: t})
}

// next pops the earliest timer due at or before now.
func (s *scheduler) next(now time.Duration) (*scheduledTimer, bool) {
	if len(s.queue) == 0 || s.queue[0].at > now {
		return nil, false
	}
	return heap.Pop(&s.queue).(*scheduledTimer), true
}

func (s *scheduler) pending() int { return len(s.queue) }
