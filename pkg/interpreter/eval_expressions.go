package interpreter

import (
	"math"

	"github.com/voidlang/void/pkg/ast"
	"github.com/voidlang/void/pkg/runtime"
)

func (interp *Interpreter) evalExpr(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntLiteral:
		return runtime.IntValue{Val: n.Value}, nil
	case *ast.FloatLiteral:
		return runtime.FloatValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BoolLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.Identifier:
		binding, err := env.Get(n.Name)
		if err != nil {
			return nil, runtimeErr("%s", err.Error())
		}
		return binding.Value, nil
	case *ast.UnaryExpr:
		return interp.evalUnaryExpr(n, env)
	case *ast.Binary:
		return interp.evalBinary(n, env)
	case *ast.FunctionCall:
		return interp.evalFunctionCall(n, env)
	case *ast.RandCall:
		return interp.evalRandCall(n, env)
	case *ast.ListLiteral:
		return interp.evalListLiteral(n, env)
	case *ast.DictLiteral:
		return interp.evalDictLiteral(n, env)
	case *ast.IndexAccess:
		return interp.evalIndexAccess(n, env)
	case *ast.Write:
		return interp.evalWrite(n, env)
	default:
		return nil, runtimeErr("unsupported expression node %T", node)
	}
}

func (interp *Interpreter) evalUnaryExpr(n *ast.UnaryExpr, env *runtime.Environment) (runtime.Value, error) {
	x, err := interp.evalExpr(n.X, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.OpNeg:
		num, ok := toNumber(x)
		if !ok {
			return nil, runtimeErr("unary '-' requires a number, got %s", valueKindName(x))
		}
		if _, isInt := x.(runtime.IntValue); isInt {
			return runtime.IntValue{Val: -int64(num)}, nil
		}
		return runtime.FloatValue{Val: -num}, nil
	case ast.OpNot:
		return runtime.BoolValue{Val: !truthy(x)}, nil
	default:
		return nil, runtimeErr("unknown unary operator %q", n.Op)
	}
}

func (interp *Interpreter) evalBinary(n *ast.Binary, env *runtime.Environment) (runtime.Value, error) {
	l, err := interp.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	r, err := interp.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.OpAnd:
		return runtime.BoolValue{Val: truthy(l) && truthy(r)}, nil
	case ast.OpOr:
		return runtime.BoolValue{Val: truthy(l) || truthy(r)}, nil
	case ast.OpEq:
		return runtime.BoolValue{Val: valuesEqual(l, r)}, nil
	case ast.OpNotEq:
		return runtime.BoolValue{Val: !valuesEqual(l, r)}, nil
	case ast.OpLt, ast.OpGt, ast.OpLtEq, ast.OpGtEq:
		return interp.evalOrdering(n.Op, l, r)
	case ast.OpAdd:
		return interp.evalAdd(l, r)
	case ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod, ast.OpPow:
		return interp.evalArith(n.Op, l, r)
	default:
		return nil, runtimeErr("unknown binary operator %q", n.Op)
	}
}

func (interp *Interpreter) evalOrdering(op ast.BinaryOp, l, r runtime.Value) (runtime.Value, error) {
	ln, ok := toNumber(l)
	if !ok {
		return nil, runtimeErr("cannot compare %s as a number", valueKindName(l))
	}
	rn, ok := toNumber(r)
	if !ok {
		return nil, runtimeErr("cannot compare %s as a number", valueKindName(r))
	}
	switch op {
	case ast.OpLt:
		return runtime.BoolValue{Val: ln < rn}, nil
	case ast.OpGt:
		return runtime.BoolValue{Val: ln > rn}, nil
	case ast.OpLtEq:
		return runtime.BoolValue{Val: ln <= rn}, nil
	case ast.OpGtEq:
		return runtime.BoolValue{Val: ln >= rn}, nil
	default:
		return nil, runtimeErr("unknown ordering operator %q", op)
	}
}

func (interp *Interpreter) evalAdd(l, r runtime.Value) (runtime.Value, error) {
	_, lStr := l.(runtime.StringValue)
	_, rStr := r.(runtime.StringValue)
	if lStr || rStr {
		return runtime.StringValue{Val: stringify(l) + stringify(r)}, nil
	}
	lList, lIsList := l.(*runtime.ListValue)
	rList, rIsList := r.(*runtime.ListValue)
	if lIsList && rIsList {
		combined := make([]runtime.Value, 0, len(lList.Elements)+len(rList.Elements))
		combined = append(combined, lList.Elements...)
		combined = append(combined, rList.Elements...)
		return runtime.NewList(combined), nil
	}
	ln, lok := numericOperand(l)
	rn, rok := numericOperand(r)
	if lok && rok {
		if isIntValue(l) && isIntValue(r) {
			return runtime.IntValue{Val: int64(ln) + int64(rn)}, nil
		}
		return runtime.FloatValue{Val: ln + rn}, nil
	}
	return nil, runtimeErr("'+' requires strings, numbers, or lists; got %s and %s", valueKindName(l), valueKindName(r))
}

// numericOperand accepts only genuine int/float values; it is the numeric
// path of '+' and of the numeric builtins. toNumber, used by '- * / % **'
// and the ordering operators, also parses strings and maps bools to 0/1.
func numericOperand(v runtime.Value) (float64, bool) {
	switch val := v.(type) {
	case runtime.IntValue:
		return float64(val.Val), true
	case runtime.FloatValue:
		return val.Val, true
	default:
		return 0, false
	}
}

func isIntValue(v runtime.Value) bool {
	_, ok := v.(runtime.IntValue)
	return ok
}

func (interp *Interpreter) evalArith(op ast.BinaryOp, l, r runtime.Value) (runtime.Value, error) {
	// Coerce both operands to number (numeric strings, bool→{0,1}), the
	// same coercing path evalOrdering uses for < > <= >=.
	ln, lok := toNumber(l)
	rn, rok := toNumber(r)
	if !lok || !rok {
		return nil, runtimeErr("'%s' requires numbers; got %s and %s", op, valueKindName(l), valueKindName(r))
	}
	bothInt := isIntValue(l) && isIntValue(r)

	switch op {
	case ast.OpSub:
		if bothInt {
			return runtime.IntValue{Val: int64(ln) - int64(rn)}, nil
		}
		return runtime.FloatValue{Val: ln - rn}, nil
	case ast.OpMul:
		if bothInt {
			return runtime.IntValue{Val: int64(ln) * int64(rn)}, nil
		}
		return runtime.FloatValue{Val: ln * rn}, nil
	case ast.OpDiv:
		if rn == 0 {
			return nil, runtimeErr("division by zero")
		}
		if bothInt {
			return runtime.IntValue{Val: int64(ln) / int64(rn)}, nil
		}
		return runtime.FloatValue{Val: ln / rn}, nil
	case ast.OpMod:
		if rn == 0 {
			return nil, runtimeErr("modulo by zero")
		}
		if bothInt {
			return runtime.IntValue{Val: int64(ln) % int64(rn)}, nil
		}
		return runtime.FloatValue{Val: math.Mod(ln, rn)}, nil
	case ast.OpPow:
		result := math.Pow(ln, rn)
		if bothInt && rn >= 0 {
			return runtime.IntValue{Val: int64(result)}, nil
		}
		return runtime.FloatValue{Val: result}, nil
	default:
		return nil, runtimeErr("unknown arithmetic operator %q", op)
	}
}

func (interp *Interpreter) evalListLiteral(n *ast.ListLiteral, env *runtime.Environment) (runtime.Value, error) {
	elems := make([]runtime.Value, len(n.Elements))
	for i, e := range n.Elements {
		v, err := interp.evalExpr(e, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return runtime.NewList(elems), nil
}

func (interp *Interpreter) evalDictLiteral(n *ast.DictLiteral, env *runtime.Environment) (runtime.Value, error) {
	dict := runtime.NewDict()
	for _, entry := range n.Entries {
		k, err := interp.evalExpr(entry.Key, env)
		if err != nil {
			return nil, err
		}
		v, err := interp.evalExpr(entry.Value, env)
		if err != nil {
			return nil, err
		}
		dict.Set(k, v, valuesEqual)
	}
	return dict, nil
}

func (interp *Interpreter) evalIndexAccess(n *ast.IndexAccess, env *runtime.Environment) (runtime.Value, error) {
	obj, err := interp.evalExpr(n.Object, env)
	if err != nil {
		return nil, err
	}
	idx, err := interp.evalExpr(n.Index, env)
	if err != nil {
		return nil, err
	}

	switch target := obj.(type) {
	case *runtime.ListValue:
		i, err := listIndex(target, idx)
		if err != nil {
			return nil, err
		}
		return target.Elements[i], nil
	case *runtime.DictValue:
		i := target.IndexOf(idx, valuesEqual)
		if i < 0 {
			return nil, runtimeErr("dict has no key %s", stringify(idx))
		}
		return target.Values[i], nil
	case runtime.StringValue:
		runes := []rune(target.Val)
		i, err := resolveIndex(len(runes), idx)
		if err != nil {
			return nil, err
		}
		return runtime.StringValue{Val: string(runes[i])}, nil
	default:
		return nil, runtimeErr("cannot index into %s", valueKindName(obj))
	}
}

// resolveIndex coerces idx to a number and resolves negative-from-end
// indexing against a collection of the given length, failing on
// out-of-range.
func resolveIndex(length int, idx runtime.Value) (int, error) {
	n, ok := toNumber(idx)
	if !ok {
		return 0, runtimeErr("index must be a number, got %s", valueKindName(idx))
	}
	i := int(n)
	if i < 0 {
		i = length + i
	}
	if i < 0 || i >= length {
		return 0, runtimeErr("index %d out of range (length %d)", int(n), length)
	}
	return i, nil
}

func listIndex(list *runtime.ListValue, idx runtime.Value) (int, error) {
	return resolveIndex(len(list.Elements), idx)
}

func (interp *Interpreter) evalWrite(n *ast.Write, env *runtime.Environment) (runtime.Value, error) {
	prompt, err := interp.evalExpr(n.Prompt, env)
	if err != nil {
		return nil, err
	}
	if _, err := interp.Out.Write([]byte(stringify(prompt))); err != nil {
		return nil, err
	}
	line, err := interp.Prompt()
	if err != nil {
		return nil, runtimeErr("failed to read input: %s", err.Error())
	}
	return runtime.StringValue{Val: line}, nil
}
