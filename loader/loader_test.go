package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmartin84/askpath/graph"
	"github.com/nmartin84/askpath/walk"
)

const questionnaire = `
questions:
  - id: age
    prompt: "How old are you?"
    root: true
  - id: minor
    parent: age
    prompt: "Is a guardian present?"
    condition:
      kind: comparison
      operator: "<"
      value: 18
  - id: adult
    parent: age
    prompt: "What is your occupation?"
  - id: done
    parent: adult
    prompt: "Anything else?"
    condition:
      kind: comparison
      operator: "!="
      value: ""
`

func TestLoadRoundTrip(t *testing.T) {
	g, err := Load([]byte(questionnaire))
	require.NoError(t, err)

	root := g.Root()
	require.NotNil(t, root)
	assert.Equal(t, graph.Identifier("age"), root.ID)
	assert.Equal(t, "How old are you?", root.Prompt)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.IsConnected())

	// Reading back the declared edges reproduces them exactly: no
	// duplication, no loss, declaration order preserved.
	fromAge := g.Adjacent(root)
	require.Len(t, fromAge, 2)
	assert.Equal(t, graph.Identifier("minor"), fromAge[0].To.ID)
	assert.Equal(t, graph.NewComparison(graph.OpLess, graph.IntValue(18)), fromAge[0].Condition)
	assert.Equal(t, graph.Identifier("adult"), fromAge[1].To.ID)
	assert.True(t, graph.IsDefault(fromAge[1].Condition))

	fromAdult := g.Adjacent(g.VertexByID("adult"))
	require.Len(t, fromAdult, 1)
	assert.Equal(t, graph.Identifier("done"), fromAdult[0].To.ID)
	assert.Equal(t, graph.NewComparison(graph.OpNotEqual, graph.StringValue("")), fromAdult[0].Condition)

	assert.Empty(t, g.Adjacent(g.VertexByID("minor")))
	assert.Empty(t, g.Adjacent(g.VertexByID("done")))
}

func TestLoadWalks(t *testing.T) {
	g, err := Load([]byte(questionnaire))
	require.NoError(t, err)

	asker := walk.NewQueueAsker(graph.IntValue(30), graph.StringValue("engineer"))
	results, err := walk.NewTraversal(g).Run(asker)
	require.NoError(t, err)

	pairs := results.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, graph.Identifier("age"), pairs[0].ID)
	assert.Equal(t, graph.Identifier("adult"), pairs[1].ID)
}

func TestLoadNumericIdentifiers(t *testing.T) {
	src := `
questions:
  - id: 0
    prompt: "Zero?"
    root: true
  - id: 1
    parent: 0
    prompt: "One?"
`
	g, err := Load([]byte(src))
	require.NoError(t, err)

	root := g.Root()
	require.NotNil(t, root)
	assert.Equal(t, graph.Identifier("0"), root.ID)

	edges := g.Adjacent(root)
	require.Len(t, edges, 1)
	assert.Equal(t, graph.Identifier("1"), edges[0].To.ID)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty document", `questions: []`},
		{"missing prompt", `
questions:
  - id: a
    root: true`},
		{"missing id", `
questions:
  - prompt: "A?"
    root: true`},
		{"duplicate id", `
questions:
  - id: a
    prompt: "A?"
    root: true
  - id: a
    parent: a
    prompt: "Again?"`},
		{"orphan record", `
questions:
  - id: a
    prompt: "A?"
    root: true
  - id: b
    prompt: "B?"`},
		{"root with parent", `
questions:
  - id: a
    prompt: "A?"
    root: true
  - id: b
    parent: a
    prompt: "B?"
    root: true`},
		{"unknown parent", `
questions:
  - id: a
    prompt: "A?"
    root: true
  - id: b
    parent: ghost
    prompt: "B?"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.src))
			require.Error(t, err)
		})
	}
}

func TestLoadUnknownConditionKind(t *testing.T) {
	src := `
questions:
  - id: a
    prompt: "A?"
    root: true
  - id: b
    parent: a
    prompt: "B?"
    condition:
      kind: regex
      pattern: ".*"
`
	_, err := Load([]byte(src))
	require.ErrorIs(t, err, graph.ErrUnknownConditionKind)
}

func TestLoadDuplicateDefaultPath(t *testing.T) {
	src := `
questions:
  - id: a
    prompt: "A?"
    root: true
  - id: b
    parent: a
    prompt: "B?"
  - id: c
    parent: a
    prompt: "C?"
`
	_, err := Load([]byte(src))
	require.ErrorIs(t, err, graph.ErrDuplicateDefaultPath)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.yaml")
	require.NoError(t, os.WriteFile(path, []byte(questionnaire), 0o644))

	g, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	src := `
age: 12
name: "Sam"
score: 1.5
consent: true
`
	overrides, err := LoadOverrides([]byte(src))
	require.NoError(t, err)
	require.Len(t, overrides, 4)

	v, ok := overrides.Lookup("age")
	require.True(t, ok)
	assert.Equal(t, graph.IntValue(12), v)

	v, _ = overrides.Lookup("name")
	assert.Equal(t, graph.StringValue("Sam"), v)
	v, _ = overrides.Lookup("score")
	assert.Equal(t, graph.FloatValue(1.5), v)
	v, _ = overrides.Lookup("consent")
	assert.Equal(t, graph.BoolValue(true), v)

	_, ok = overrides.Lookup("absent")
	assert.False(t, ok)
}

func TestLoadOverridesRejectsNonScalars(t *testing.T) {
	_, err := LoadOverrides([]byte("age:\n  nested: 1\n"))
	require.ErrorIs(t, err, graph.ErrTypeMismatch)
}
