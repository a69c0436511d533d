package language

import "strconv"

// VariableRef stands in for a variable reference inside a literal value.
type VariableRef struct {
	Name string
}

// ValueOf converts a value node into a plain Go value: int64, float64,
// string, bool, nil, []any, map[string]any, or VariableRef. Enum values become
// their name.
func ValueOf(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case Variable:
		return VariableRef{Name: v.Raw}
	case IntValue:
		if n, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return n
		}
		return v.Raw
	case FloatValue:
		if f, err := strconv.ParseFloat(v.Raw, 64); err == nil {
			return f
		}
		return v.Raw
	case BooleanValue:
		return v.Raw == "true"
	case NullValue:
		return nil
	case StringValue, BlockValue, EnumValue:
		return v.Raw
	case ListValue:
		out := make([]any, 0, len(v.Children))
		for _, child := range v.Children {
			out = append(out, ValueOf(child.Value))
		}
		return out
	case ObjectValue:
		out := make(map[string]any, len(v.Children))
		for _, child := range v.Children {
			out[child.Name] = ValueOf(child.Value)
		}
		return out
	}
	return v.Raw
}
