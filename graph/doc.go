// Package graph models a rooted, conditionally-branching question
// graph.
//
// A ConditionalGraph owns vertices (identified question prompts) and
// labeled directed edges, each guarded by a Condition over the answer
// given at the source vertex. The graph is a multigraph: one source
// may carry several outgoing edges with distinct conditions, at most
// one of which may be the unconditional AlwaysTrue catch-all. Exactly
// one vertex is designated root.
//
// Resolve implements path selection: given an answer and a vertex's
// outgoing halfedges it returns the single matching destination, nil
// when nothing matches, or ErrAmbiguousPath when the graph is
// malformed and more than one edge matches.
//
// Condition variants are constructed by kind tag through an open
// registry (BuildCondition / RegisterCondition), so loaders can name
// kinds declaratively and callers can add variants without touching
// the evaluator.
package graph
