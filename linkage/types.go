package linkage

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvlink/cluster"
	"github.com/katalvlaran/lvlink/edges"
	"github.com/katalvlaran/lvlink/geom"
)

// Sentinel errors for linkage runs.
var (
	// ErrNoPoints indicates an empty point set; the run has nothing to connect.
	ErrNoPoints = errors.New("linkage: point set is empty")

	// ErrInvalidBudget indicates a negative link budget.
	ErrInvalidBudget = errors.New("linkage: link budget must not be negative")

	// ErrNotRunning indicates Step was called on a finished Linker.
	ErrNotRunning = errors.New("linkage: linker is not running")

	// ErrProductOverflow indicates the coordinate product does not fit in an int64.
	ErrProductOverflow = errors.New("linkage: coordinate product overflows int64")

	// ErrExhaustedEdges is edges.ErrExhaustedEdges, re-exported for callers of this package.
	ErrExhaustedEdges = edges.ErrExhaustedEdges
)

// State is the Linker's run state.
type State int

const (
	// StateRunning accepts further Steps.
	StateRunning State = iota
	// StateDone means the termination condition was met.
	StateDone
	// StateFailed means the edge queue ran dry first.
	StateFailed
)

// String returns a lower-case state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultLinkBudget is the link budget of a full-scale bounded run.
const DefaultLinkBudget = 1000

// Options configures a run. Use DefaultOptions and Option helpers.
type Options struct {
	// TopK is how many of the largest circuits ClusterProduct multiplies.
	TopK int

	// Axis selects the coordinate CompletingEdge multiplies.
	Axis geom.Axis

	// Logger receives a Debug record per accepted link and an Info record
	// when a run terminates. Never nil after DefaultOptions.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns TopK = cluster.DefaultK, Axis = geom.AxisX and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		TopK:   cluster.DefaultK,
		Axis:   geom.AxisX,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithTopK sets how many of the largest circuits are multiplied.
func WithTopK(k int) Option {
	return func(o *Options) { o.TopK = k }
}

// WithAxis sets the coordinate multiplied for the completing edge.
func WithAxis(a geom.Axis) Option {
	return func(o *Options) { o.Axis = a }
}

// WithLogger routes run logging to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Link is one accepted edge as reported by Linker.Step.
type Link struct {
	edges.Edge

	// Merged is false when both endpoints were already in one circuit.
	Merged bool

	// Root is the representative of the circuit now holding both endpoints.
	Root int

	// Size is the number of points in that circuit.
	Size int
}

// ClusterResult is the outcome of ClusterProduct.
type ClusterResult struct {
	cluster.Result

	// Links is the number of accepted links, equal to the budget.
	Links int
}

// CompletionResult is the outcome of CompletingEdge.
type CompletionResult struct {
	// Edge is the link after which all points formed one circuit.
	// It is the zero Edge when Trivial is set.
	Edge edges.Edge

	// A and B are the endpoints of Edge.
	A, B geom.Point

	// Product is A's coordinate times B's coordinate on the chosen axis.
	Product int64

	// Links is the number of accepted links up to and including Edge.
	Links int

	// Trivial is set for a single point, which is connected without any link.
	Trivial bool
}
