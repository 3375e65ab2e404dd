package walk

import (
	"bytes"
	"encoding/json"

	"github.com/nmartin84/askpath/graph"
)

// Results is the accumulated answer mapping of a walk: vertex
// identifier to answer value, insertion-ordered. A later write for an
// identifier overwrites the value but keeps the original position.
type Results struct {
	order  []graph.Identifier
	values map[graph.Identifier]graph.Value
}

// NewResults creates an empty result mapping.
func NewResults() *Results {
	return &Results{values: make(map[graph.Identifier]graph.Value)}
}

// Set records the answer for an identifier.
func (r *Results) Set(id graph.Identifier, answer graph.Value) {
	if _, ok := r.values[id]; !ok {
		r.order = append(r.order, id)
	}
	r.values[id] = answer
}

// Get returns the recorded answer for an identifier.
func (r *Results) Get(id graph.Identifier) (graph.Value, bool) {
	v, ok := r.values[id]
	return v, ok
}

// Len returns the number of recorded answers.
func (r *Results) Len() int { return len(r.order) }

// Pair is one (identifier, answer) entry of the result mapping.
type Pair struct {
	ID     graph.Identifier
	Answer graph.Value
}

// Pairs returns the recorded answers in insertion order.
func (r *Results) Pairs() []Pair {
	out := make([]Pair, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, Pair{ID: id, Answer: r.values[id]})
	}
	return out
}

// MarshalJSON encodes the mapping as a JSON object preserving
// insertion order.
func (r *Results) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(id))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[id])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
