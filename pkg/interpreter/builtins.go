package interpreter

import (
	"math"
	"strconv"
	"strings"

	"github.com/voidlang/void/pkg/ast"
	"github.com/voidlang/void/pkg/runtime"
)

func (interp *Interpreter) evalFunctionCall(call *ast.FunctionCall, env *runtime.Environment) (runtime.Value, error) {
	args := make([]runtime.Value, len(call.Args))
	for i, a := range call.Args {
		v, err := interp.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return interp.callBuiltin(call.Name, args)
}

func arityErr(name string, want, got int) error {
	return runtimeErr("%s expects %d argument(s), got %d", name, want, got)
}

func (interp *Interpreter) callBuiltin(name string, args []runtime.Value) (runtime.Value, error) {
	switch name {
	case "abs":
		if len(args) != 1 {
			return nil, arityErr(name, 1, len(args))
		}
		n, ok := numericOperand(args[0])
		if !ok {
			return nil, runtimeErr("abs expects a number, got %s", valueKindName(args[0]))
		}
		if isIntValue(args[0]) {
			return runtime.IntValue{Val: int64(math.Abs(n))}, nil
		}
		return runtime.FloatValue{Val: math.Abs(n)}, nil

	case "sqrt":
		n, err := numericArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		return runtime.FloatValue{Val: math.Sqrt(n)}, nil

	case "floor":
		n, err := numericArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		return runtime.IntValue{Val: int64(math.Floor(n))}, nil

	case "ceil":
		n, err := numericArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		return runtime.IntValue{Val: int64(math.Ceil(n))}, nil

	case "round":
		n, err := numericArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		// Ties round away from zero (math.Round's documented behavior);
		// see DESIGN.md for why this convention was picked over
		// round-half-to-even.
		return runtime.IntValue{Val: int64(math.Round(n))}, nil

	case "min", "max":
		if len(args) != 2 {
			return nil, arityErr(name, 2, len(args))
		}
		a, aok := numericOperand(args[0])
		b, bok := numericOperand(args[1])
		if !aok || !bok {
			return nil, runtimeErr("%s expects two numbers", name)
		}
		bothInt := isIntValue(args[0]) && isIntValue(args[1])
		var result float64
		if name == "min" {
			result = math.Min(a, b)
		} else {
			result = math.Max(a, b)
		}
		if bothInt {
			return runtime.IntValue{Val: int64(result)}, nil
		}
		return runtime.FloatValue{Val: result}, nil

	case "random":
		if len(args) != 0 {
			return nil, arityErr(name, 0, len(args))
		}
		return runtime.FloatValue{Val: interp.rng.Float64()}, nil

	case "toInt":
		if len(args) != 1 {
			return nil, arityErr(name, 1, len(args))
		}
		s := stringify(args[0])
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return runtime.IntValue{Val: n}, nil
		}
		return runtime.IntValue{Val: 0}, nil

	case "toFloat":
		if len(args) != 1 {
			return nil, arityErr(name, 1, len(args))
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(stringify(args[0])), 64); err == nil {
			return runtime.FloatValue{Val: f}, nil
		}
		return runtime.FloatValue{Val: 0}, nil

	case "toString":
		if len(args) != 1 {
			return nil, arityErr(name, 1, len(args))
		}
		return runtime.StringValue{Val: stringify(args[0])}, nil

	case "toBool":
		if len(args) != 1 {
			return nil, arityErr(name, 1, len(args))
		}
		return runtime.BoolValue{Val: truthy(args[0])}, nil

	case "length":
		if len(args) != 1 {
			return nil, arityErr(name, 1, len(args))
		}
		switch v := args[0].(type) {
		case *runtime.ListValue:
			return runtime.IntValue{Val: int64(len(v.Elements))}, nil
		case *runtime.DictValue:
			return runtime.IntValue{Val: int64(v.Len())}, nil
		default:
			return runtime.IntValue{Val: int64(len([]rune(stringify(v))))}, nil
		}

	case "upper":
		s, err := stringArg(name, args)
		if err != nil {
			return nil, err
		}
		return runtime.StringValue{Val: strings.ToUpper(s)}, nil

	case "lower":
		s, err := stringArg(name, args)
		if err != nil {
			return nil, err
		}
		return runtime.StringValue{Val: strings.ToLower(s)}, nil

	case "trim":
		s, err := stringArg(name, args)
		if err != nil {
			return nil, err
		}
		return runtime.StringValue{Val: strings.TrimSpace(s)}, nil

	case "contains":
		if len(args) != 2 {
			return nil, arityErr(name, 2, len(args))
		}
		if list, ok := args[0].(*runtime.ListValue); ok {
			for _, elem := range list.Elements {
				if valuesEqual(elem, args[1]) {
					return runtime.BoolValue{Val: true}, nil
				}
			}
			return runtime.BoolValue{Val: false}, nil
		}
		haystack := stringify(args[0])
		needle := stringify(args[1])
		return runtime.BoolValue{Val: strings.Contains(haystack, needle)}, nil

	default:
		return nil, runtimeErr("unknown function %q", name)
	}
}

func numericArg(name string, args []runtime.Value, arity int) (float64, error) {
	if len(args) != arity {
		return 0, arityErr(name, arity, len(args))
	}
	n, ok := numericOperand(args[0])
	if !ok {
		return 0, runtimeErr("%s expects a number, got %s", name, valueKindName(args[0]))
	}
	return n, nil
}

func stringArg(name string, args []runtime.Value) (string, error) {
	if len(args) != 1 {
		return "", arityErr(name, 1, len(args))
	}
	return stringify(args[0]), nil
}

func (interp *Interpreter) evalRandCall(n *ast.RandCall, env *runtime.Environment) (runtime.Value, error) {
	minVal, err := interp.evalExpr(n.Min, env)
	if err != nil {
		return nil, err
	}
	maxVal, err := interp.evalExpr(n.Max, env)
	if err != nil {
		return nil, err
	}
	minN, minOK := numericOperand(minVal)
	maxN, maxOK := numericOperand(maxVal)
	if !minOK || !maxOK {
		return nil, runtimeErr("rand(min, max) requires two numbers")
	}
	min, max := int64(minN), int64(maxN)
	if min > max {
		return nil, runtimeErr("rand(min, max): min (%d) must not exceed max (%d)", min, max)
	}
	span := max - min + 1
	return runtime.IntValue{Val: min + interp.rng.Int63n(span)}, nil
}
