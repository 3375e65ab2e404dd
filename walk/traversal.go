package walk

import (
	"fmt"

	"github.com/nmartin84/askpath/graph"
)

// State is the traversal lifecycle state.
type State int

const (
	// NotStarted means Start has not been called (or Reset was).
	NotStarted State = iota
	// AtVertex means the traversal is positioned at a vertex awaiting
	// an answer.
	AtVertex
	// Terminal means the walk has ended.
	Terminal
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case AtVertex:
		return "at_vertex"
	case Terminal:
		return "terminal"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Overrides is a pre-supplied answer set keyed by vertex identifier.
// When an override is present for the current vertex, its value is
// used instead of asking the answer source. Enables scripted walks.
type Overrides map[graph.Identifier]graph.Value

// Lookup returns the override for an identifier.
func (o Overrides) Lookup(id graph.Identifier) (graph.Value, bool) {
	v, ok := o[id]
	return v, ok
}

// Option configures a Traversal.
type Option func(*Traversal)

// WithOverrides attaches a pre-supplied answer set to the traversal.
func WithOverrides(o Overrides) Option {
	return func(t *Traversal) { t.overrides = o }
}

// Traversal is a restartable, single-pass walk over a conditional
// graph. Starting at the root, each step records the answer for the
// current vertex and resolves the next vertex from the outgoing edge
// conditions; the walk ends at the first vertex with no matching edge.
// A traversal never mutates the graph; walk behavior is defined only
// when the vertices reachable from the root form a DAG.
type Traversal struct {
	g         *graph.ConditionalGraph
	overrides Overrides

	state   State
	current *graph.Vertex
	results *Results
}

// NewTraversal creates a traversal over g.
func NewTraversal(g *graph.ConditionalGraph, opts ...Option) *Traversal {
	t := &Traversal{g: g, results: NewResults()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the traversal lifecycle state.
func (t *Traversal) State() State { return t.state }

// Current returns the vertex awaiting an answer, or nil when the
// traversal is not positioned at one.
func (t *Traversal) Current() *graph.Vertex {
	if t.state != AtVertex {
		return nil
	}
	return t.current
}

// Results returns the accumulated answer mapping.
func (t *Traversal) Results() *Results { return t.results }

// Reset returns the traversal to NotStarted with an empty result
// mapping, allowing a fresh walk over the same graph.
func (t *Traversal) Reset() {
	t.state = NotStarted
	t.current = nil
	t.results = NewResults()
}

// Start positions the traversal at the root and returns the first
// vertex to prompt. Fails with ErrNoRoot when the graph has no
// designated root. Returns nil when the walk is immediately terminal
// (the root has no outgoing edges, so no answer is needed).
func (t *Traversal) Start() (*graph.Vertex, error) {
	if t.state != NotStarted {
		return nil, fmt.Errorf("traversal already started")
	}

	root := t.g.Root()
	if root == nil {
		return nil, graph.ErrNoRoot
	}

	return t.position(root), nil
}

// Advance records the answer for the current vertex, resolves the next
// vertex from the outgoing edges, and returns the next vertex to
// prompt. Returns nil when the walk has ended: either no edge matched
// the answer, or the destination has no outgoing edges of its own.
// Resolution defects (ErrAmbiguousPath, ErrTypeMismatch) abort the
// walk.
func (t *Traversal) Advance(answer graph.Value) (*graph.Vertex, error) {
	if t.state != AtVertex {
		return nil, fmt.Errorf("traversal is not at a vertex (state %s)", t.state)
	}

	t.results.Set(t.current.ID, answer)

	next, err := graph.Resolve(answer, t.g.Adjacent(t.current))
	if err != nil {
		t.state = Terminal
		return nil, fmt.Errorf("resolving path from %q: %w", t.current.ID, err)
	}
	if next == nil {
		t.state = Terminal
		t.current = nil
		return nil, nil
	}

	return t.position(next), nil
}

// position moves the cursor to v. A vertex with no outgoing edges has
// no path to resolve, so it is terminal without being prompted.
func (t *Traversal) position(v *graph.Vertex) *graph.Vertex {
	if len(t.g.Adjacent(v)) == 0 {
		t.state = Terminal
		t.current = nil
		return nil
	}
	t.state = AtVertex
	t.current = v
	return v
}

// Run drives the walk to completion, answering each prompt from the
// override set when present and from src otherwise. Returns the
// accumulated result mapping.
func (t *Traversal) Run(src AnswerSource) (*Results, error) {
	v, err := t.Start()
	if err != nil {
		return nil, err
	}

	for v != nil {
		answer, ok := t.overrides.Lookup(v.ID)
		if !ok {
			answer, err = src.Ask(v.Prompt)
			if err != nil {
				return nil, fmt.Errorf("asking %q: %w", v.ID, err)
			}
		}

		v, err = t.Advance(answer)
		if err != nil {
			return nil, err
		}
	}

	return t.results, nil
}
