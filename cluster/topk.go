package cluster

import (
	"container/heap"
	"fmt"
	"sort"
)

// TopK retains the k largest values offered to it.
type TopK struct {
	k int
	h minHeap
}

// NewTopK returns an empty TopK with capacity k.
func NewTopK(k int) (*TopK, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}

	return &TopK{k: k, h: make(minHeap, 0, k+1)}, nil
}

// Offer inserts v, then evicts the current minimum if more than k values are held.
func (t *TopK) Offer(v int) {
	heap.Push(&t.h, v)
	if t.h.Len() > t.k {
		heap.Pop(&t.h)
	}
}

// Len returns the number of retained values, at most k.
func (t *TopK) Len() int { return t.h.Len() }

// Values returns the retained values in descending order.
func (t *TopK) Values() []int {
	out := append([]int(nil), t.h...)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}

// Product multiplies the retained values; an empty TopK yields 1.
func (t *TopK) Product() int {
	p := 1
	for _, v := range t.h {
		p *= v
	}

	return p
}

// minHeap implements heap.Interface over ints, smallest on top.
type minHeap []int

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}
