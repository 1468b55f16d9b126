// Package cluster summarizes the groups of a dsu.Forest: it finds the K
// largest connected components and multiplies their sizes.
//
// TopK keeps the K largest values offered to it in a min-heap capped at K
// elements, so the smallest retained value is always the one evicted when a
// larger candidate arrives. Analyze walks every index of a forest once,
// counts each root exactly once, and feeds the root's group size to a TopK.
//
// The product over fewer than K retained values treats the missing slots as
// 1, so a forest with two components and K = 3 reports size(a)·size(b).
package cluster
