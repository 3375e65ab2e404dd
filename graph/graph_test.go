package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertexRoot(t *testing.T) {
	g := New()
	root := NewVertex("start", "Where do we begin?")

	require.NoError(t, g.AddVertex(root, true))
	assert.True(t, root.Equal(g.Root()))

	// Re-designating the same vertex is idempotent.
	require.NoError(t, g.AddVertex(root, true))
	assert.True(t, root.Equal(g.Root()))

	// A second, different root is a conflict.
	other := NewVertex("other", "Another start?")
	err := g.AddVertex(other, true)
	require.ErrorIs(t, err, ErrRootConflict)
}

func TestAddVertexIdentifierCollision(t *testing.T) {
	g := New()
	require.NoError(t, g.AddVertex(NewVertex("q1", "First?"), false))

	// Same id, same prompt: fine.
	require.NoError(t, g.AddVertex(NewVertex("q1", "First?"), false))
	assert.Equal(t, 1, g.VertexCount())

	// Same id, different prompt: rejected.
	require.Error(t, g.AddVertex(NewVertex("q1", "Second?"), false))
}

func TestAddEdgeRootDesignation(t *testing.T) {
	g := New()
	a := NewVertex("a", "A?")
	b := NewVertex("b", "B?")

	require.NoError(t, g.AddEdge(a, b, AlwaysTrue{}, true))
	assert.True(t, a.Equal(g.Root()))

	c := NewVertex("c", "C?")
	err := g.AddEdge(c, b, AlwaysTrue{}, true)
	require.ErrorIs(t, err, ErrRootConflict)
}

func TestAddEdgeDuplicateDefaultPath(t *testing.T) {
	g := New()
	a := NewVertex("a", "A?")
	b := NewVertex("b", "B?")
	c := NewVertex("c", "C?")

	require.NoError(t, g.AddEdge(a, b, AlwaysTrue{}, true))

	err := g.AddEdge(a, c, AlwaysTrue{}, false)
	require.ErrorIs(t, err, ErrDuplicateDefaultPath)

	// The rejected edge must not be partially inserted.
	assert.Equal(t, 1, g.EdgeCount())
	assert.Len(t, g.Adjacent(a), 1)
	assert.Nil(t, g.VertexByID("c"))

	// A guarded edge from the same source is still allowed.
	require.NoError(t, g.AddEdge(a, c, NewComparison(OpEqual, StringValue("c")), false))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAdjacentOrderAndUnknowns(t *testing.T) {
	g := New()
	a := NewVertex("a", "A?")
	b := NewVertex("b", "B?")
	c := NewVertex("c", "C?")
	d := NewVertex("d", "D?")

	require.NoError(t, g.AddEdge(a, b, NewComparison(OpEqual, StringValue("b")), true))
	require.NoError(t, g.AddEdge(a, c, NewComparison(OpEqual, StringValue("c")), false))
	require.NoError(t, g.AddEdge(a, d, AlwaysTrue{}, false))

	adjacent := g.Adjacent(a)
	require.Len(t, adjacent, 3)
	assert.Equal(t, Identifier("b"), adjacent[0].To.ID)
	assert.Equal(t, Identifier("c"), adjacent[1].To.ID)
	assert.Equal(t, Identifier("d"), adjacent[2].To.ID)

	// Leaf and unknown vertices yield empty sequences, not errors.
	assert.Empty(t, g.Adjacent(d))
	assert.Empty(t, g.Adjacent(NewVertex("zz", "?")))
	assert.Empty(t, g.Adjacent(nil))
}

func TestVerticesInsertionOrder(t *testing.T) {
	g := New()
	a := NewVertex("a", "A?")
	b := NewVertex("b", "B?")
	c := NewVertex("c", "C?")

	require.NoError(t, g.AddVertex(a, true))
	require.NoError(t, g.AddEdge(a, b, AlwaysTrue{}, false))
	require.NoError(t, g.AddEdge(b, c, AlwaysTrue{}, false))

	ids := []Identifier{}
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []Identifier{"a", "b", "c"}, ids)
}

func TestIsConnected(t *testing.T) {
	g := New()
	assert.False(t, g.IsConnected())

	a := NewVertex("a", "A?")
	b := NewVertex("b", "B?")
	require.NoError(t, g.AddEdge(a, b, AlwaysTrue{}, true))
	assert.True(t, g.IsConnected())

	// An island vertex breaks connectivity.
	require.NoError(t, g.AddVertex(NewVertex("island", "Alone?"), false))
	assert.False(t, g.IsConnected())

	// Edges count as undirected for the check: a second parent
	// pointing *into* the component keeps it connected.
	g2 := New()
	root := NewVertex("root", "Root?")
	mid := NewVertex("mid", "Mid?")
	side := NewVertex("side", "Side?")
	require.NoError(t, g2.AddEdge(root, mid, AlwaysTrue{}, true))
	require.NoError(t, g2.AddEdge(side, mid, AlwaysTrue{}, false))
	assert.True(t, g2.IsConnected())
}
