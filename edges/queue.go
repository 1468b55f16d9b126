package edges

import "container/heap"

// Queue is a min-priority queue of edges under the Less ordering.
// The zero value is an empty, ready-to-use queue.
type Queue struct {
	h edgeHeap
}

// NewQueue builds a queue holding every edge of es in O(len(es)).
// The queue takes ownership of es; callers must not modify it afterwards.
func NewQueue(es []Edge) *Queue {
	q := &Queue{h: edgeHeap(es)}
	heap.Init(&q.h)

	return q
}

// Len returns the number of edges still queued.
func (q *Queue) Len() int { return q.h.Len() }

// Push adds e to the queue.
func (q *Queue) Push(e Edge) { heap.Push(&q.h, e) }

// PopMin removes and returns the smallest edge.
// It returns ErrExhaustedEdges when the queue is empty.
func (q *Queue) PopMin() (Edge, error) {
	if q.h.Len() == 0 {
		return Edge{}, ErrExhaustedEdges
	}

	return heap.Pop(&q.h).(Edge), nil
}

// Peek returns the smallest edge without removing it.
func (q *Queue) Peek() (Edge, bool) {
	if q.h.Len() == 0 {
		return Edge{}, false
	}

	return q.h[0], true
}

// edgeHeap implements heap.Interface as a min-heap of Edge values.
type edgeHeap []Edge

func (h edgeHeap) Len() int           { return len(h) }
func (h edgeHeap) Less(i, j int) bool { return Less(h[i], h[j]) }
func (h edgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *edgeHeap) Push(x any) { *h = append(*h, x.(Edge)) }

// Pop removes the last element; called by heap.Pop after moving the minimum there.
func (h *edgeHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
