package cluster

import (
	"github.com/katalvlaran/lvlink/dsu"
)

// Analyze reports the k largest component sizes of f and their product.
//
// Error Conditions:
//   - ErrInvalidK: k < 1.
//
// Steps:
//  1. Create a TopK of capacity k.
//  2. For each index i, resolve its root; skip roots already seen.
//  3. Offer each new root's group size to the TopK.
//  4. Report the retained sizes (descending), their product and the root count.
//
// Every index is visited once; its root is resolved with Find (compressing
// paths as a side effect) and each distinct root contributes its group size
// exactly once, however many members map to it.
//
// Complexity: O(n·α(n) + c·log k) for n elements and c components.
func Analyze(f *dsu.Forest, k int) (Result, error) {
	top, err := NewTopK(k)
	if err != nil {
		return Result{}, err
	}

	seen := make(map[int]struct{}, f.Count())
	for i := 0; i < f.Len(); i++ {
		root, err := f.Find(i)
		if err != nil {
			return Result{}, err
		}
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}

		size, err := f.GroupSize(root)
		if err != nil {
			return Result{}, err
		}
		top.Offer(size)
	}

	return Result{
		Sizes:      top.Values(),
		Product:    top.Product(),
		Components: len(seen),
	}, nil
}
