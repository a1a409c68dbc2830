package interpreter

import (
	"math"
	"strconv"
	"strings"

	"github.com/voidlang/void/pkg/runtime"
)

// truthy implements the scalar-to-bool coercion rule used by conditions,
// !, &&, ||, and toBool: null->false, bool->itself, number-> != 0,
// string/list/dict -> length/size > 0.
func truthy(v runtime.Value) bool {
	switch val := v.(type) {
	case runtime.NullValue:
		return false
	case runtime.BoolValue:
		return val.Val
	case runtime.IntValue:
		return val.Val != 0
	case runtime.FloatValue:
		return val.Val != 0
	case runtime.StringValue:
		return len(val.Val) > 0
	case *runtime.ListValue:
		return len(val.Elements) > 0
	case *runtime.DictValue:
		return val.Len() > 0
	default:
		return false
	}
}

// toNumber coerces v to a float64 per the scalar-cast rule: strings are
// parsed as decimal or float, bool maps to {0,1}, int/float pass through.
// It fails (ok=false) for non-numeric strings, lists, dicts, and null.
func toNumber(v runtime.Value) (float64, bool) {
	switch val := v.(type) {
	case runtime.IntValue:
		return float64(val.Val), true
	case runtime.FloatValue:
		if math.IsNaN(val.Val) {
			return 0, false
		}
		return val.Val, true
	case runtime.BoolValue:
		if val.Val {
			return 1, true
		}
		return 0, true
	case runtime.StringValue:
		s := strings.TrimSpace(val.Val)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return float64(n), true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// coerceToType applies the declare/assign scalar cast for one of the
// scalar declared types. list/dict bindings never coerce: the caller must
// check value shape separately.
func coerceToType(declaredType string, v runtime.Value) (runtime.Value, error) {
	switch declaredType {
	case "string":
		return runtime.StringValue{Val: stringify(v)}, nil
	case "bool":
		return runtime.BoolValue{Val: truthy(v)}, nil
	case "int":
		n, ok := toNumber(v)
		if !ok {
			return nil, runtimeErr("cannot coerce %s to int", valueKindName(v))
		}
		return runtime.IntValue{Val: int64(math.Floor(n))}, nil
	case "float":
		n, ok := toNumber(v)
		if !ok {
			return nil, runtimeErr("cannot coerce %s to float", valueKindName(v))
		}
		return runtime.FloatValue{Val: n}, nil
	default:
		return nil, runtimeErr("unknown scalar type %q", declaredType)
	}
}

func valueKindName(v runtime.Value) string {
	if v == nil {
		return "null"
	}
	return v.Kind().String()
}

// valuesEqual implements the cross-type equality relation used by ==, !=,
// and dict-key matching.
func valuesEqual(a, b runtime.Value) bool {
	if a.Kind() == b.Kind() {
		switch av := a.(type) {
		case runtime.NullValue:
			return true
		case runtime.BoolValue:
			return av.Val == b.(runtime.BoolValue).Val
		case runtime.IntValue:
			return av.Val == b.(runtime.IntValue).Val
		case runtime.FloatValue:
			return av.Val == b.(runtime.FloatValue).Val
		case runtime.StringValue:
			return av.Val == b.(runtime.StringValue).Val
		case *runtime.ListValue:
			return av == b.(*runtime.ListValue)
		case *runtime.DictValue:
			return av == b.(*runtime.DictValue)
		}
		return false
	}
	if isBoolOrNumber(a) && isBoolOrNumber(b) {
		an, aok := toNumber(a)
		bn, bok := toNumber(b)
		if aok && bok {
			return an == bn
		}
	}
	return stringify(a) == stringify(b)
}

func isBoolOrNumber(v runtime.Value) bool {
	switch v.(type) {
	case runtime.BoolValue, runtime.IntValue, runtime.FloatValue:
		return true
	default:
		return false
	}
}

// stringify is the canonical value-to-string rendering used by + with
// strings, echo, toString, and nested container printing.
func stringify(v runtime.Value) string {
	switch val := v.(type) {
	case runtime.NullValue:
		return "null"
	case runtime.BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case runtime.IntValue:
		return strconv.FormatInt(val.Val, 10)
	case runtime.FloatValue:
		return strconv.FormatFloat(val.Val, 'g', -1, 64)
	case runtime.StringValue:
		return val.Val
	case *runtime.ListValue:
		parts := make([]string, len(val.Elements))
		for i, e := range val.Elements {
			parts[i] = stringify(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *runtime.DictValue:
		parts := make([]string, val.Len())
		for i := range val.Keys {
			parts[i] = stringify(val.Keys[i]) + ":" + stringify(val.Values[i])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}
