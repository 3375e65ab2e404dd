// Package loader builds conditional graphs from declarative YAML
// record sets: one record per vertex, each non-root record naming its
// parent and the condition guarding the edge from parent to self.
package loader

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nmartin84/askpath/graph"
	"github.com/nmartin84/askpath/walk"
)

// Record declares one vertex and, for non-root records, the guarded
// edge from its parent.
type Record struct {
	ID        any            `yaml:"id"`
	Prompt    string         `yaml:"prompt"`
	Parent    any            `yaml:"parent"`
	Root      bool           `yaml:"root"`
	Condition map[string]any `yaml:"condition"`
}

// Document is the top-level YAML shape.
type Document struct {
	Questions []Record `yaml:"questions"`
}

// identifier canonicalises a YAML scalar id to a graph identifier.
func identifier(raw any) (graph.Identifier, error) {
	switch x := raw.(type) {
	case string:
		if x == "" {
			return "", fmt.Errorf("empty identifier")
		}
		return graph.Identifier(x), nil
	case int:
		return graph.Identifier(strconv.Itoa(x)), nil
	case int64:
		return graph.Identifier(strconv.FormatInt(x, 10)), nil
	case nil:
		return "", fmt.Errorf("missing identifier")
	default:
		return "", fmt.Errorf("identifier must be a string or integer, got %T", raw)
	}
}

// Load builds a fully populated graph from a YAML record set.
func Load(src []byte) (*graph.ConditionalGraph, error) {
	var doc Document
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("parsing questionnaire: %w", err)
	}
	if len(doc.Questions) == 0 {
		return nil, fmt.Errorf("questionnaire declares no questions")
	}

	g := graph.New()
	vertices := make(map[graph.Identifier]*graph.Vertex, len(doc.Questions))

	// First pass: create every vertex so parents can be declared in
	// any order.
	for i, rec := range doc.Questions {
		id, err := identifier(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		if rec.Prompt == "" {
			return nil, fmt.Errorf("question %q has no prompt", id)
		}
		if _, ok := vertices[id]; ok {
			return nil, fmt.Errorf("duplicate question id %q", id)
		}

		v := graph.NewVertex(id, rec.Prompt)
		if err := g.AddVertex(v, rec.Root); err != nil {
			return nil, fmt.Errorf("question %q: %w", id, err)
		}
		vertices[id] = v
	}

	// Second pass: wire each non-root record to its parent.
	for _, rec := range doc.Questions {
		id, _ := identifier(rec.ID)
		v := vertices[id]

		if rec.Parent == nil {
			if !rec.Root {
				return nil, fmt.Errorf("question %q has no parent and is not the root", id)
			}
			continue
		}
		if rec.Root {
			return nil, fmt.Errorf("root question %q must not declare a parent", id)
		}

		parentID, err := identifier(rec.Parent)
		if err != nil {
			return nil, fmt.Errorf("question %q parent: %w", id, err)
		}
		parent, ok := vertices[parentID]
		if !ok {
			return nil, fmt.Errorf("question %q names unknown parent %q", id, parentID)
		}

		cond, err := buildCondition(rec.Condition)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", id, err)
		}

		if err := g.AddEdge(parent, v, cond, false); err != nil {
			return nil, fmt.Errorf("question %q: %w", id, err)
		}
	}

	return g, nil
}

// buildCondition constructs the guard for a record's inbound edge. A
// record without a condition (or without a kind tag) takes the default
// catch-all path.
func buildCondition(descriptor map[string]any) (graph.Condition, error) {
	kind := graph.ConditionDefault
	if descriptor != nil {
		if k, ok := descriptor["kind"].(string); ok && k != "" {
			kind = k
		}
	}
	return graph.BuildCondition(kind, descriptor)
}

// LoadFile builds a graph from a YAML file on disk.
func LoadFile(path string) (*graph.ConditionalGraph, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading questionnaire: %w", err)
	}
	return Load(src)
}

// LoadOverrides reads a YAML mapping of question id to pre-supplied
// answer into an override context.
func LoadOverrides(src []byte) (walk.Overrides, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("parsing overrides: %w", err)
	}

	overrides := make(walk.Overrides, len(raw))
	for id, answer := range raw {
		value, err := graph.ValueOf(answer)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", id, err)
		}
		overrides[graph.Identifier(id)] = value
	}
	return overrides, nil
}

// LoadOverridesFile reads an override-answer file from disk.
func LoadOverridesFile(path string) (walk.Overrides, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overrides: %w", err)
	}
	return LoadOverrides(src)
}
