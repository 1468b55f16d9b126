package linkage

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlink/cluster"
	"github.com/katalvlaran/lvlink/dsu"
	"github.com/katalvlaran/lvlink/edges"
	"github.com/katalvlaran/lvlink/geom"
)

// Linker is the run state of one linkage pass: the disjoint-set forest, the
// ledger of accepted pairs and the queue of edges not yet popped.
type Linker struct {
	points []geom.Point
	forest *dsu.Forest
	ledger *Ledger
	queue  *edges.Queue
	state  State
	opts   Options
	log    *slog.Logger
}

// NewLinker enumerates all pairs of points, loads them into the queue and
// returns a Linker in StateRunning with every point in its own circuit.
//
// Errors: ErrNoPoints for an empty slice, cluster.ErrInvalidK for TopK < 1,
// geom.ErrUnknownAxis for an invalid Axis. Panics like edges.Enumerate on a
// non-finite distance.
func NewLinker(points []geom.Point, opts ...Option) (*Linker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if o.TopK < 1 {
		return nil, fmt.Errorf("linkage: %w: %d", cluster.ErrInvalidK, o.TopK)
	}
	if !o.Axis.Valid() {
		return nil, fmt.Errorf("linkage: %w: %v", geom.ErrUnknownAxis, o.Axis)
	}

	forest, err := dsu.New(len(points))
	if err != nil {
		return nil, err
	}
	es := edges.Enumerate(points)

	return &Linker{
		points: points,
		forest: forest,
		ledger: NewLedger(len(points)),
		queue:  edges.NewQueue(es),
		state:  StateRunning,
		opts:   o,
		log:    o.Logger.With("points", len(points)),
	}, nil
}

// Step accepts the next link: it pops edges until one whose pair is not yet
// in the ledger, records that pair and unions its endpoints.
//
// When the queue runs dry the Linker moves to StateFailed and Step returns
// ErrExhaustedEdges. A finished Linker returns ErrNotRunning.
func (l *Linker) Step() (Link, error) {
	if l.state != StateRunning {
		return Link{}, fmt.Errorf("%w: %v", ErrNotRunning, l.state)
	}

	for {
		e, err := l.queue.PopMin()
		if err != nil {
			l.state = StateFailed
			l.log.Info("edge queue exhausted", "links", l.ledger.Len(), "circuits", l.forest.Count())

			return Link{}, fmt.Errorf("linkage: after %d links: %w", l.ledger.Len(), err)
		}
		if !l.ledger.Add(e.Pair) {
			l.log.Debug("pair already linked", "pair", e.Pair.String())
			continue
		}

		root, merged, err := l.forest.Union(e.I, e.J)
		if err != nil {
			return Link{}, err
		}
		size, err := l.forest.GroupSize(root)
		if err != nil {
			return Link{}, err
		}
		l.log.Debug("link accepted",
			"pair", e.Pair.String(),
			"weight", e.Weight,
			"merged", merged,
			"circuit_size", size,
		)

		return Link{Edge: e, Merged: merged, Root: root, Size: size}, nil
	}
}

// State returns the current run state.
func (l *Linker) State() State { return l.state }

// Links returns the number of accepted links.
func (l *Linker) Links() int { return l.ledger.Len() }

// Linked reports whether the pair {a, b} has been accepted.
func (l *Linker) Linked(a, b int) bool {
	p, err := edges.NewPair(a, b)
	if err != nil {
		return false
	}

	return l.ledger.Contains(p)
}

// LinkedPairs returns every accepted pair in canonical order.
func (l *Linker) LinkedPairs() []edges.Pair { return l.ledger.Pairs() }

// Circuits returns the current number of distinct circuits.
func (l *Linker) Circuits() int { return l.forest.Count() }

// Remaining returns the number of edges still queued.
func (l *Linker) Remaining() int { return l.queue.Len() }

// Largest reports the k largest circuits of the current forest.
func (l *Linker) Largest(k int) (cluster.Result, error) {
	return cluster.Analyze(l.forest, k)
}

// finish marks the run as successfully terminated.
func (l *Linker) finish() { l.state = StateDone }
