package linkage

import (
	"sort"

	"github.com/katalvlaran/lvlink/edges"
)

// Ledger is the set of canonical pairs already accepted as links.
//
// The queue emits every pair once, so a hit here should not occur in
// practice; the ledger still guards each union so a pair is never linked twice.
type Ledger struct {
	pairs map[edges.Pair]struct{}
}

// NewLedger returns an empty Ledger sized for hint pairs.
func NewLedger(hint int) *Ledger {
	return &Ledger{pairs: make(map[edges.Pair]struct{}, hint)}
}

// Add records p and reports whether it was new.
func (l *Ledger) Add(p edges.Pair) bool {
	if _, ok := l.pairs[p]; ok {
		return false
	}
	l.pairs[p] = struct{}{}

	return true
}

// Contains reports whether p was recorded.
func (l *Ledger) Contains(p edges.Pair) bool {
	_, ok := l.pairs[p]

	return ok
}

// Len returns the number of recorded pairs.
func (l *Ledger) Len() int { return len(l.pairs) }

// Pairs returns the recorded pairs in canonical order.
func (l *Ledger) Pairs() []edges.Pair {
	out := make([]edges.Pair, 0, len(l.pairs))
	for p := range l.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
