package interpreter

import (
	"github.com/voidlang/void/pkg/ast"
	"github.com/voidlang/void/pkg/runtime"
)

// execBlockIn runs stmts directly in env, without opening a further child
// scope. Callers that need a fresh scope per spec (if/while/for bodies)
// go through execBlock instead.
func (interp *Interpreter) execBlockIn(block *ast.Block, env *runtime.Environment) error {
	for _, stmt := range block.Statements {
		if err := interp.execStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

// execBlock runs block in a fresh child scope of parent, per the spec's
// "every Block runs in a fresh child environment of its parent" rule.
func (interp *Interpreter) execBlock(block *ast.Block, parent *runtime.Environment) error {
	return interp.execBlockIn(block, parent.Extend())
}

func (interp *Interpreter) execStatement(stmt ast.Statement, env *runtime.Environment) error {
	switch s := stmt.(type) {
	case *ast.Echo:
		return interp.execEcho(s, env)
	case *ast.CreateVar:
		return interp.execCreateVar(s, env)
	case *ast.AssignVar:
		return interp.execAssignVar(s, env)
	case *ast.IndexAssign:
		return interp.execIndexAssign(s, env)
	case *ast.If:
		return interp.execIf(s, env)
	case *ast.While:
		return interp.execWhile(s, env)
	case *ast.For:
		return interp.execFor(s, env)
	case *ast.MethodCall:
		return interp.execMethodCall(s, env)
	case *ast.ExprStatement:
		_, err := interp.evalFunctionCall(s.Call, env)
		return err
	default:
		return runtimeErr("unsupported statement node %T", stmt)
	}
}

func (interp *Interpreter) execEcho(s *ast.Echo, env *runtime.Environment) error {
	parts := make([]string, len(s.Args))
	for i, arg := range s.Args {
		val, err := interp.evalExpr(arg, env)
		if err != nil {
			return err
		}
		parts[i] = stringify(val)
	}
	line := ""
	for i, p := range parts {
		if i > 0 {
			line += " "
		}
		line += p
	}
	_, err := interp.Out.Write([]byte(line + "\n"))
	return err
}

func (interp *Interpreter) execCreateVar(s *ast.CreateVar, env *runtime.Environment) error {
	init, err := interp.evalExpr(s.Init, env)
	if err != nil {
		return err
	}
	value, err := interp.bindValueForType(s.DeclaredType, init)
	if err != nil {
		return err
	}
	if err := env.Define(s.Name, s.DeclaredType, value); err != nil {
		return runtimeErr("%s", err.Error())
	}
	return nil
}

// bindValueForType applies the declare/assign coercion rule: scalar types
// coerce per coerceToType, list/dict reject non-matching shape outright.
func (interp *Interpreter) bindValueForType(declaredType string, v runtime.Value) (runtime.Value, error) {
	switch declaredType {
	case "list":
		list, ok := v.(*runtime.ListValue)
		if !ok {
			return nil, runtimeErr("cannot assign %s to a list-typed binding", valueKindName(v))
		}
		return list, nil
	case "dict":
		dict, ok := v.(*runtime.DictValue)
		if !ok {
			return nil, runtimeErr("cannot assign %s to a dict-typed binding", valueKindName(v))
		}
		return dict, nil
	default:
		return coerceToType(declaredType, v)
	}
}

func (interp *Interpreter) execAssignVar(s *ast.AssignVar, env *runtime.Environment) error {
	binding, err := env.Get(s.Name)
	if err != nil {
		return runtimeErr("%s", err.Error())
	}
	raw, err := interp.evalExpr(s.Value, env)
	if err != nil {
		return err
	}
	value, err := interp.bindValueForType(binding.DeclaredType, raw)
	if err != nil {
		return err
	}
	return env.Set(s.Name, value)
}

func (interp *Interpreter) execIndexAssign(s *ast.IndexAssign, env *runtime.Environment) error {
	target, err := interp.evalExpr(s.Object, env)
	if err != nil {
		return err
	}
	idx, err := interp.evalExpr(s.Index, env)
	if err != nil {
		return err
	}
	value, err := interp.evalExpr(s.Value, env)
	if err != nil {
		return err
	}

	switch coll := target.(type) {
	case *runtime.ListValue:
		i, err := listIndex(coll, idx)
		if err != nil {
			return err
		}
		coll.Elements[i] = value
		return nil
	case *runtime.DictValue:
		coll.Set(idx, value, valuesEqual)
		return nil
	case runtime.StringValue:
		return runtimeErr("strings are immutable; cannot assign to an index of a string")
	default:
		return runtimeErr("cannot index-assign into %s", valueKindName(target))
	}
}

func (interp *Interpreter) execIf(s *ast.If, env *runtime.Environment) error {
	cond, err := interp.evalExpr(s.Cond, env)
	if err != nil {
		return err
	}
	if truthy(cond) {
		return interp.execBlock(s.Then, env)
	}
	switch els := s.Else.(type) {
	case nil:
		return nil
	case *ast.Block:
		return interp.execBlock(els, env)
	case *ast.If:
		return interp.execIf(els, env)
	default:
		return runtimeErr("unsupported else branch node %T", s.Else)
	}
}

func (interp *Interpreter) execWhile(s *ast.While, env *runtime.Environment) error {
	iterations := 0
	for {
		cond, err := interp.evalExpr(s.Cond, env)
		if err != nil {
			return err
		}
		if !truthy(cond) {
			return nil
		}
		iterations++
		if iterations > maxLoopIterations {
			return runtimeErr("while loop exceeded %d iterations", maxLoopIterations)
		}
		if err := interp.execBlock(s.Body, env); err != nil {
			return err
		}
	}
}

func (interp *Interpreter) execFor(s *ast.For, env *runtime.Environment) error {
	headerEnv := env.Extend()
	if s.Init != nil {
		if err := interp.execStatement(s.Init, headerEnv); err != nil {
			return err
		}
	}

	iterations := 0
	for {
		cond := true
		if s.Cond != nil {
			condVal, err := interp.evalExpr(s.Cond, headerEnv)
			if err != nil {
				return err
			}
			cond = truthy(condVal)
		}
		if !cond {
			return nil
		}
		iterations++
		if iterations > maxLoopIterations {
			return runtimeErr("for loop exceeded %d iterations", maxLoopIterations)
		}
		if err := interp.execBlock(s.Body, headerEnv); err != nil {
			return err
		}
		if s.Update != nil {
			if err := interp.execStatement(s.Update, headerEnv); err != nil {
				return err
			}
		}
	}
}

func (interp *Interpreter) execMethodCall(s *ast.MethodCall, env *runtime.Environment) error {
	binding, err := env.Get(s.Object)
	if err != nil {
		return runtimeErr("%s", err.Error())
	}
	if binding.DeclaredType != s.Collection {
		return runtimeErr("'%s' is declared %s, not %s", s.Object, binding.DeclaredType, s.Collection)
	}

	args := make([]runtime.Value, len(s.Args))
	for i, a := range s.Args {
		v, err := interp.evalExpr(a, env)
		if err != nil {
			return err
		}
		args[i] = v
	}

	switch s.Collection {
	case "list":
		list, ok := binding.Value.(*runtime.ListValue)
		if !ok {
			return runtimeErr("'%s' does not hold a list value", s.Object)
		}
		return interp.execListMethod(s.Method, list, args)
	case "dict":
		dict, ok := binding.Value.(*runtime.DictValue)
		if !ok {
			return runtimeErr("'%s' does not hold a dict value", s.Object)
		}
		return interp.execDictMethod(s.Method, dict, args)
	default:
		return runtimeErr("unknown collection kind %q", s.Collection)
	}
}

func (interp *Interpreter) execListMethod(method string, list *runtime.ListValue, args []runtime.Value) error {
	switch method {
	case "add":
		if len(args) != 1 {
			return runtimeErr("add:list expects 1 argument, got %d", len(args))
		}
		list.Elements = append(list.Elements, args[0])
		return nil
	case "delete":
		if len(args) != 1 {
			return runtimeErr("delete:list expects 1 argument, got %d", len(args))
		}
		i, err := listIndex(list, args[0])
		if err != nil {
			return err
		}
		list.Elements = append(list.Elements[:i], list.Elements[i+1:]...)
		return nil
	case "clear":
		list.Elements = nil
		return nil
	default:
		return runtimeErr("unknown list method %q", method)
	}
}

func (interp *Interpreter) execDictMethod(method string, dict *runtime.DictValue, args []runtime.Value) error {
	switch method {
	case "add":
		if len(args) < 2 {
			return runtimeErr("add:dict expects a key and a value, got %d argument(s)", len(args))
		}
		dict.Set(args[0], args[1], valuesEqual)
		return nil
	case "delete":
		if len(args) != 1 {
			return runtimeErr("delete:dict expects 1 argument, got %d", len(args))
		}
		if !dict.Delete(args[0], valuesEqual) {
			return runtimeErr("delete:dict: no entry for key %s", stringify(args[0]))
		}
		return nil
	case "clear":
		dict.Clear()
		return nil
	default:
		return runtimeErr("unknown dict method %q", method)
	}
}
