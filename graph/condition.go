package graph

import "fmt"

// Condition is a pure predicate over a single answer value. Conditions
// are immutable and independent of any graph.
type Condition interface {
	// Evaluate reports whether the answer satisfies the condition.
	// Returns ErrTypeMismatch when the answer cannot be compared
	// against the condition's operand.
	Evaluate(answer Value) (bool, error)
	String() string
}

// AlwaysTrue matches any answer. At most one outgoing edge per vertex
// may carry it; it is the catch-all ("default") path.
type AlwaysTrue struct{}

func (AlwaysTrue) Evaluate(Value) (bool, error) { return true, nil }

func (AlwaysTrue) String() string { return "TRUE" }

// IsDefault reports whether c is the unconditional catch-all condition.
func IsDefault(c Condition) bool {
	_, ok := c.(AlwaysTrue)
	return ok
}

// Operator is a comparison operator token.
type Operator string

const (
	OpEqual          Operator = "=="
	OpNotEqual       Operator = "!="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
)

// ParseOperator converts an operator token to an Operator.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case OpEqual, OpNotEqual, OpLess, OpLessOrEqual, OpGreater, OpGreaterOrEqual:
		return op, nil
	default:
		return "", fmt.Errorf("no such operator %q", s)
	}
}

// Comparison matches an answer iff `answer <op> operand` holds under
// the operand's natural ordering.
type Comparison struct {
	Op      Operator
	Operand Value
}

// NewComparison creates a comparison condition.
func NewComparison(op Operator, operand Value) Comparison {
	return Comparison{Op: op, Operand: operand}
}

func (c Comparison) Evaluate(answer Value) (bool, error) {
	switch c.Op {
	case OpEqual:
		return answer.Equal(c.Operand)
	case OpNotEqual:
		eq, err := answer.Equal(c.Operand)
		return !eq, err
	}

	cmp, err := answer.Compare(c.Operand)
	if err != nil {
		return false, err
	}
	switch c.Op {
	case OpLess:
		return cmp < 0, nil
	case OpLessOrEqual:
		return cmp <= 0, nil
	case OpGreater:
		return cmp > 0, nil
	case OpGreaterOrEqual:
		return cmp >= 0, nil
	default:
		return false, fmt.Errorf("no such operator %q", c.Op)
	}
}

func (c Comparison) String() string {
	return fmt.Sprintf("$input %s %s", c.Op, c.Operand)
}
