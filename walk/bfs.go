package walk

import (
	"iter"

	"github.com/nmartin84/askpath/graph"
)

// BreadthFirst returns a read-only iterator that visits every vertex
// reachable from the root exactly once, in FIFO discovery order,
// without following answer-dependent branching. Used for inspection
// and validation. Fails with ErrNoRoot when the graph has no root.
//
// A vertex may be enqueued through more than one predecessor; the
// visited set guarantees it is yielded once, which also bounds the
// iteration by the vertex count even on cyclic graphs.
func BreadthFirst(g *graph.ConditionalGraph) (iter.Seq[*graph.Vertex], error) {
	root := g.Root()
	if root == nil {
		return nil, graph.ErrNoRoot
	}

	return func(yield func(*graph.Vertex) bool) {
		visited := make(map[graph.Identifier]bool)
		queue := []*graph.Vertex{root}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			if visited[v.ID] {
				continue
			}
			visited[v.ID] = true

			if !yield(v) {
				return
			}
			for _, he := range g.Adjacent(v) {
				if !visited[he.To.ID] {
					queue = append(queue, he.To)
				}
			}
		}
	}, nil
}
