package graph

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Condition kinds with built-in constructors.
const (
	ConditionDefault    = "default"
	ConditionComparison = "comparison"
)

// ConditionConstructor builds a condition from a decoded descriptor.
// Params hold the descriptor fields beyond the kind tag.
type ConditionConstructor func(params map[string]any) (Condition, error)

var conditionKinds = map[string]ConditionConstructor{
	ConditionDefault:    newDefaultCondition,
	ConditionComparison: newComparisonCondition,
}

// RegisterCondition adds or replaces the constructor for a condition
// kind. New variants can be registered without modifying the
// evaluator. Not safe for concurrent use; register during init.
func RegisterCondition(kind string, ctor ConditionConstructor) {
	conditionKinds[kind] = ctor
}

// BuildCondition constructs a condition from its kind tag and
// descriptor params. Unregistered kinds fail with
// ErrUnknownConditionKind.
func BuildCondition(kind string, params map[string]any) (Condition, error) {
	ctor, ok := conditionKinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConditionKind, kind)
	}
	return ctor(params)
}

func newDefaultCondition(map[string]any) (Condition, error) {
	return AlwaysTrue{}, nil
}

// comparisonParams is the descriptor shape for comparison conditions.
// "value" is the canonical operand key; "compare_to" is accepted as a
// legacy spelling.
type comparisonParams struct {
	Operator  string `mapstructure:"operator"`
	Value     any    `mapstructure:"value"`
	CompareTo any    `mapstructure:"compare_to"`
}

func newComparisonCondition(params map[string]any) (Condition, error) {
	var p comparisonParams
	if err := mapstructure.Decode(params, &p); err != nil {
		return nil, fmt.Errorf("decoding comparison condition: %w", err)
	}

	op, err := ParseOperator(p.Operator)
	if err != nil {
		return nil, err
	}

	raw := p.Value
	if raw == nil {
		raw = p.CompareTo
	}
	if raw == nil {
		return nil, fmt.Errorf("comparison condition has no operand")
	}
	operand, err := ValueOf(raw)
	if err != nil {
		return nil, err
	}

	return NewComparison(op, operand), nil
}
