package dsu

import "fmt"

// New creates a Forest of n singleton groups: every element is its own root
// with size 1. n == 0 yields an empty forest on which every index is out of range.
//
// Error Conditions:
//   - ErrNegativeSize: n < 0.
//
// Complexity: O(n) time and memory.
func New(n int) (*Forest, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f, nil
}

// Len returns the number of elements n.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the number of distinct groups.
func (f *Forest) Count() int { return f.count }

// Find returns the root of the group containing x, compressing the path on the way.
//
// Error Conditions:
//   - ErrIndexOutOfRange: x outside [0, n).
//
// Steps:
//  1. Follow parent links from x until a self-loop (the root).
//  2. Walk the same path again, re-pointing every node directly at the root.
//
// The partition is unchanged; only parent pointers move.
// Complexity: O(α(n)) amortized, O(1) extra memory.
func (f *Forest) Find(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	return f.find(x), nil
}

// Union merges the groups of x and y by size.
//
// It returns the surviving root and whether a merge actually happened; if x
// and y already share a root, the forest is left unchanged and merged is false.
//
// Error Conditions:
//   - ErrIndexOutOfRange: x or y outside [0, n). The forest is not modified.
//
// Steps:
//  1. Resolve rootX = Find(x), rootY = Find(y); equal roots return early.
//  2. If size[rootX] < size[rootY], swap them, so equal sizes keep x's root.
//  3. Attach rootY under rootX, add its size to rootX, decrement Count.
//
// Complexity: O(α(n)) amortized.
func (f *Forest) Union(x, y int) (root int, merged bool, err error) {
	if err = f.check(x); err != nil {
		return 0, false, err
	}
	if err = f.check(y); err != nil {
		return 0, false, err
	}

	rootX, rootY := f.find(x), f.find(y)
	if rootX == rootY {
		return rootX, false, nil
	}
	// Keep rootX as the survivor unless its group is strictly smaller.
	if f.size[rootX] < f.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	f.parent[rootY] = rootX
	f.size[rootX] += f.size[rootY]
	f.count--

	return rootX, true, nil
}

// GroupSize returns the number of elements in the group containing x.
func (f *Forest) GroupSize(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	return f.size[f.find(x)], nil
}

// Connected reports whether x and y belong to the same group.
func (f *Forest) Connected(x, y int) (bool, error) {
	if err := f.check(x); err != nil {
		return false, err
	}
	if err := f.check(y); err != nil {
		return false, err
	}

	return f.find(x) == f.find(y), nil
}

// find walks to the root, then re-points every node on the path at it.
// x must already be in range.
func (f *Forest) find(x int) int {
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[x] != root {
		x, f.parent[x] = f.parent[x], root
	}

	return root
}

func (f *Forest) check(x int) error {
	if x < 0 || x >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, x, len(f.parent))
	}

	return nil
}
