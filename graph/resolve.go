package graph

import "fmt"

// Resolve selects the single outgoing edge whose condition matches the
// answer and returns its destination.
//
// The unconditional catch-all edge is a fallback, not a competing
// match: it is taken only when no guarded edge matches. Among the
// guarded edges, exactly one may match; more than one is a structural
// defect in the graph and fails with ErrAmbiguousPath. Every guarded
// edge is evaluated, so ambiguity is detected regardless of edge
// order. No match and no catch-all returns nil, and the caller treats
// the current vertex as terminal. Evaluation errors propagate.
func Resolve(answer Value, edges []Halfedge) (*Vertex, error) {
	var destination *Vertex
	var fallback *Vertex
	for _, he := range edges {
		if IsDefault(he.Condition) {
			fallback = he.To
			continue
		}
		match, err := he.Condition.Evaluate(answer)
		if err != nil {
			return nil, err
		}
		if !match {
			continue
		}
		if destination != nil {
			return nil, fmt.Errorf("%w: answer %s matches edges to %q and %q",
				ErrAmbiguousPath, answer, destination.ID, he.To.ID)
		}
		destination = he.To
	}
	if destination == nil {
		return fallback, nil
	}
	return destination, nil
}
