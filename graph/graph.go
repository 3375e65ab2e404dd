package graph

import "fmt"

// Halfedge is the outgoing half of a labeled edge: the destination
// vertex and the condition guarding the transition.
type Halfedge struct {
	To        *Vertex
	Condition Condition
}

// ConditionalGraph is a rooted directed multigraph whose edges are
// guarded by conditions. It is built incrementally by a loader and
// then frozen: construction is single-writer, and a frozen graph may
// be read by any number of concurrent traversals.
type ConditionalGraph struct {
	vertices  map[Identifier]*Vertex
	order     []Identifier
	adj       map[Identifier][]Halfedge
	edgeCount int
	root      *Vertex
}

// New creates an empty graph.
func New() *ConditionalGraph {
	return &ConditionalGraph{
		vertices: make(map[Identifier]*Vertex),
		adj:      make(map[Identifier][]Halfedge),
	}
}

func (g *ConditionalGraph) setRoot(v *Vertex) error {
	if g.root != nil && !g.root.Equal(v) {
		return fmt.Errorf("%w: cannot set %q as root", ErrRootConflict, v.ID)
	}
	g.root = v
	return nil
}

func (g *ConditionalGraph) insertVertex(v *Vertex) error {
	if existing, ok := g.vertices[v.ID]; ok {
		if !existing.Equal(v) {
			return fmt.Errorf("identifier %q already names a different vertex", v.ID)
		}
		return nil
	}
	g.vertices[v.ID] = v
	g.order = append(g.order, v.ID)
	return nil
}

// AddVertex inserts v into the graph. With asRoot set, v is designated
// the root; designating a second, different root fails with
// ErrRootConflict, while re-designating the same vertex is idempotent.
func (g *ConditionalGraph) AddVertex(v *Vertex, asRoot bool) error {
	if asRoot {
		if err := g.setRoot(v); err != nil {
			return err
		}
	}
	return g.insertVertex(v)
}

// AddEdge inserts a directed edge from source to destination, guarded
// by condition. Endpoints not yet in the graph are added. With asRoot
// set, source is designated the root. A second AlwaysTrue edge from
// the same source fails with ErrDuplicateDefaultPath; a rejected edge
// leaves the graph unchanged.
func (g *ConditionalGraph) AddEdge(source, destination *Vertex, condition Condition, asRoot bool) error {
	if asRoot {
		if err := g.setRoot(source); err != nil {
			return err
		}
	}

	if IsDefault(condition) {
		for _, he := range g.adj[source.ID] {
			if IsDefault(he.Condition) {
				return fmt.Errorf("%w: source %q", ErrDuplicateDefaultPath, source.ID)
			}
		}
	}

	if err := g.insertVertex(source); err != nil {
		return err
	}
	if err := g.insertVertex(destination); err != nil {
		return err
	}

	g.adj[source.ID] = append(g.adj[source.ID], Halfedge{To: destination, Condition: condition})
	g.edgeCount++
	return nil
}

// Root returns the designated root vertex, or nil if none is set.
func (g *ConditionalGraph) Root() *Vertex { return g.root }

// Adjacent returns the outgoing halfedges of v in insertion order.
// Unknown and leaf vertices yield an empty slice, not an error.
func (g *ConditionalGraph) Adjacent(v *Vertex) []Halfedge {
	if v == nil {
		return nil
	}
	edges := g.adj[v.ID]
	if len(edges) == 0 {
		return nil
	}
	out := make([]Halfedge, len(edges))
	copy(out, edges)
	return out
}

// Vertices returns all vertices in insertion order.
func (g *ConditionalGraph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.vertices[id])
	}
	return out
}

// VertexByID returns the vertex with the given identifier, or nil.
func (g *ConditionalGraph) VertexByID(id Identifier) *Vertex {
	return g.vertices[id]
}

// VertexCount returns the number of vertices in the graph.
func (g *ConditionalGraph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges in the graph.
func (g *ConditionalGraph) EdgeCount() int { return g.edgeCount }

// IsConnected reports whether every vertex is reachable from the root
// when edges are treated as undirected. A rootless or empty graph is
// not connected. Validation tooling only; the walk does not use it.
func (g *ConditionalGraph) IsConnected() bool {
	if g.root == nil || len(g.vertices) == 0 {
		return false
	}

	undirected := make(map[Identifier][]Identifier, len(g.vertices))
	for src, edges := range g.adj {
		for _, he := range edges {
			undirected[src] = append(undirected[src], he.To.ID)
			undirected[he.To.ID] = append(undirected[he.To.ID], src)
		}
	}

	visited := map[Identifier]bool{g.root.ID: true}
	queue := []Identifier{g.root.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range undirected[id] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return len(visited) == len(g.vertices)
}
