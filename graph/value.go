package graph

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind discriminates the Value tagged union.
type ValueKind string

const (
	KindString ValueKind = "string"
	KindInt    ValueKind = "int"
	KindFloat  ValueKind = "float"
	KindBool   ValueKind = "bool"
)

// Value is an answer or condition operand. Kind determines which typed
// field is populated.
type Value struct {
	Kind  ValueKind
	Str   string  // populated when Kind == KindString
	Int   int64   // populated when Kind == KindInt
	Float float64 // populated when Kind == KindFloat
	Bool  bool    // populated when Kind == KindBool
}

// StringValue wraps a string.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IntValue wraps an integer.
func IntValue(n int64) Value { return Value{Kind: KindInt, Int: n} }

// FloatValue wraps a float.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// ValueOf converts a dynamically typed scalar (as produced by YAML or
// JSON decoding) into a Value.
func ValueOf(raw any) (Value, error) {
	switch x := raw.(type) {
	case string:
		return StringValue(x), nil
	case int:
		return IntValue(int64(x)), nil
	case int32:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case uint:
		return IntValue(int64(x)), nil
	case uint64:
		return IntValue(int64(x)), nil
	case float32:
		return FloatValue(float64(x)), nil
	case float64:
		return FloatValue(x), nil
	case bool:
		return BoolValue(x), nil
	case Value:
		return x, nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported value type %T", ErrTypeMismatch, raw)
	}
}

// Native returns the value as its underlying Go type.
func (v Value) Native() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	default:
		return v.Str
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// MarshalJSON encodes the value as its native scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native())
}

func (v Value) isNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

func (v Value) asFloat() float64 {
	if v.Kind == KindInt {
		return float64(v.Int)
	}
	return v.Float
}

// Compare orders v against o under the natural ordering of the kinds:
// numeric for numbers (ints and floats compare freely), lexicographic
// for strings. Any other pairing, bools included, has no ordering and
// returns ErrTypeMismatch.
func (v Value) Compare(o Value) (int, error) {
	switch {
	case v.Kind == KindInt && o.Kind == KindInt:
		switch {
		case v.Int < o.Int:
			return -1, nil
		case v.Int > o.Int:
			return 1, nil
		}
		return 0, nil
	case v.isNumeric() && o.isNumeric():
		a, b := v.asFloat(), o.asFloat()
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		}
		return 0, nil
	case v.Kind == KindString && o.Kind == KindString:
		return strings.Compare(v.Str, o.Str), nil
	default:
		return 0, fmt.Errorf("%w: cannot order %s against %s", ErrTypeMismatch, v.Kind, o.Kind)
	}
}

// Equal reports whether v and o hold the same value. Equality is
// defined wherever ordering is, plus for bool pairs. Incomparable
// kinds are a usage error, not a silent false.
func (v Value) Equal(o Value) (bool, error) {
	if v.Kind == KindBool && o.Kind == KindBool {
		return v.Bool == o.Bool, nil
	}
	c, err := v.Compare(o)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}
