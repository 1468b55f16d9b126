package linkage

import (
	"fmt"

	"github.com/katalvlaran/lvlink/geom"
)

// ClusterProduct accepts exactly linkBudget shortest unique links, then
// multiplies the sizes of the opts TopK (default 3) largest circuits.
//
// A budget of 0 analyzes the initial singleton circuits. If the queue runs
// dry first, the error wraps ErrExhaustedEdges.
func ClusterProduct(points []geom.Point, linkBudget int, opts ...Option) (ClusterResult, error) {
	// 1. Validate the budget, then enumerate and queue every pair.
	if linkBudget < 0 {
		return ClusterResult{}, fmt.Errorf("%w: %d", ErrInvalidBudget, linkBudget)
	}
	l, err := NewLinker(points, opts...)
	if err != nil {
		return ClusterResult{}, err
	}

	// 2. Accept links until the ledger holds exactly linkBudget pairs.
	for l.Links() < linkBudget {
		if _, err := l.Step(); err != nil {
			return ClusterResult{}, err
		}
	}
	l.finish()

	// 3. Hand the forest to the cluster analyzer.
	res, err := l.Largest(l.opts.TopK)
	if err != nil {
		return ClusterResult{}, err
	}
	l.log.Info("link budget reached",
		"links", l.Links(),
		"circuits", res.Components,
		"largest", res.Sizes,
		"product", res.Product,
	)

	return ClusterResult{Result: res, Links: l.Links()}, nil
}

// CompletingEdge links shortest-first until one circuit spans every point and
// reports the link that closed it, with the product of the opts Axis
// coordinate (default X) of its endpoints.
//
// A single point is trivially connected. If the queue runs dry first, the
// error wraps ErrExhaustedEdges.
func CompletingEdge(points []geom.Point, opts ...Option) (CompletionResult, error) {
	l, err := NewLinker(points, opts...)
	if err != nil {
		return CompletionResult{}, err
	}

	n := len(points)
	if n == 1 {
		l.finish()
		l.log.Info("single point is trivially connected")

		return CompletionResult{Trivial: true}, nil
	}

	for {
		link, err := l.Step()
		if err != nil {
			return CompletionResult{}, err
		}
		if link.Size != n {
			continue
		}
		l.finish()

		a, b := l.points[link.I], l.points[link.J]
		ca, err := a.Coord(l.opts.Axis)
		if err != nil {
			return CompletionResult{}, err
		}
		cb, err := b.Coord(l.opts.Axis)
		if err != nil {
			return CompletionResult{}, err
		}
		product, ok := mulInt64(ca, cb)
		if !ok {
			l.state = StateFailed

			return CompletionResult{}, fmt.Errorf("%w: %d * %d on axis %v", ErrProductOverflow, ca, cb, l.opts.Axis)
		}
		res := CompletionResult{
			Edge:    link.Edge,
			A:       a,
			B:       b,
			Product: product,
			Links:   l.Links(),
		}
		l.log.Info("all points connected",
			"links", res.Links,
			"pair", link.Pair.String(),
			"weight", link.Weight,
			"axis", l.opts.Axis.String(),
			"product", res.Product,
		)

		return res, nil
	}
}
