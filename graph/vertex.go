package graph

// Identifier is an opaque key naming a vertex. Identifiers are unique
// within a graph; loaders canonicalise numeric ids to strings.
type Identifier string

// Vertex is a single question node. Immutable after creation and owned
// by the graph that contains it.
type Vertex struct {
	ID     Identifier
	Prompt string
}

// NewVertex creates a vertex with the given identifier and prompt text.
func NewVertex(id Identifier, prompt string) *Vertex {
	return &Vertex{ID: id, Prompt: prompt}
}

// Equal reports whether two vertices have the same identifier and prompt.
func (v *Vertex) Equal(o *Vertex) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.ID == o.ID && v.Prompt == o.Prompt
}

func (v *Vertex) String() string { return v.Prompt }
