package interpreter

import (
	"errors"
	"fmt"

	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/types"
	"github.com/chaploud/clj-runtime/internal/value"
	"github.com/chaploud/clj-runtime/pkg/analyzer"
	"github.com/chaploud/clj-runtime/pkg/hierarchy"
)

// Interpreter evaluates types.Node trees. Vars are namespace-qualified and
// live outside the lexical Environment chain, the way Clojure separates
// var roots from local bindings.
type Interpreter struct {
	CurrentNS string
	Vars      map[string]*value.Var // "ns/name" -> var
	Hierarchy *hierarchy.Hierarchy
}

// New creates an Interpreter rooted at ns, using the global hierarchy.
func New(ns string) *Interpreter {
	return &Interpreter{
		CurrentNS: ns,
		Vars:      make(map[string]*value.Var),
		Hierarchy: hierarchy.Global(),
	}
}

func varKey(ns, name string) string { return ns + "/" + name }

// Intern returns the var for ns/name, creating an unbound one if absent.
func (in *Interpreter) Intern(ns, name string) *value.Var {
	k := varKey(ns, name)
	if v, ok := in.Vars[k]; ok {
		return v
	}
	v := value.NewVar(ns, name, nil)
	in.Vars[k] = v

	return v
}

func (in *Interpreter) resolveVar(ns, name string) (*value.Var, bool) {
	if ns == "" {
		ns = in.CurrentNS
	}
	v, ok := in.Vars[varKey(ns, name)]
	if !ok && ns != in.CurrentNS {
		// a builtin whose own name contains a slash (str/join) is interned
		// under the current namespace with that whole name
		v, ok = in.Vars[varKey(in.CurrentNS, ns+"/"+name)]
	}

	return v, ok
}

// recurSignal carries recur's arguments up to the nearest loop/fn boundary.
type recurSignal struct {
	args []value.Value
}

func (r *recurSignal) Error() string { return "recur used outside of loop or fn" }

// Eval evaluates node against env.
func (in *Interpreter) Eval(node types.Node, env value.Environment) (value.Value, error) {
	switch n := node.(type) {
	case *types.LiteralNode:
		return n.Val, nil

	case *types.VarRefNode:
		return in.evalVarRef(n, env)

	case *types.QuoteNode:
		return n.Form, nil

	case *types.QuasiquoteNode:
		return in.evalQuasiquote(n.Template, env)

	case *types.IfNode:
		return in.evalIf(n, env)

	case *types.DoNode:
		return in.evalSeq(n.Exprs, env)

	case *types.AndNode:
		return in.evalAnd(n, env)

	case *types.OrNode:
		return in.evalOr(n, env)

	case *types.LetNode:
		return in.evalLet(n, env)

	case *types.LoopNode:
		return in.evalLoop(n, env)

	case *types.RecurNode:
		args, err := in.evalEach(n.Args, env)
		if err != nil {
			return nil, err
		}

		return nil, &recurSignal{args: args}

	case *types.FnNode:
		return value.NewFunction(n.Name, n.Params, n.Variadic, n.Body, env), nil

	case *types.DefNode:
		return in.evalDef(n, env)

	case *types.DelayNode:
		body, scope := n.Body, env
		return value.NewDelay(func() (value.Value, error) { return in.evalSeq(body, scope) }), nil

	case *types.LazySeqNode:
		body, scope := n.Body, env
		return value.NewLazySeq(func() (value.Value, error) { return in.evalSeq(body, scope) }), nil

	case *types.ApplyNode:
		return in.evalApply(n, env)

	default:
		return nil, corerr.New(corerr.Eval, "eval", "unhandled node type %T", node)
	}
}

func (in *Interpreter) evalVarRef(n *types.VarRefNode, env value.Environment) (value.Value, error) {
	if v, ok := env.Get(n.Sym.Name); ok && n.Sym.NS == "" {
		return v, nil
	}
	if va, ok := in.resolveVar(n.Sym.NS, n.Sym.Name); ok {
		if va.Root == nil {
			return nil, corerr.New(corerr.Eval, "eval", "var %s/%s is unbound", va.NS, va.Name)
		}

		return va.Root, nil
	}

	return nil, corerr.New(corerr.Eval, "eval", "unable to resolve symbol: %s", n.Sym.Name)
}

func (in *Interpreter) evalIf(n *types.IfNode, env value.Environment) (value.Value, error) {
	cond, err := in.Eval(n.Cond, env)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return in.Eval(n.Then, env)
	}
	if n.Else == nil {
		return value.Nil{}, nil
	}

	return in.Eval(n.Else, env)
}

func (in *Interpreter) evalSeq(nodes []types.Node, env value.Environment) (value.Value, error) {
	if len(nodes) == 0 {
		return value.Nil{}, nil
	}
	var result value.Value = value.Nil{}
	for _, node := range nodes {
		v, err := in.Eval(node, env)
		if err != nil {
			return nil, err
		}
		result = v
	}

	return result, nil
}

func (in *Interpreter) evalEach(nodes []types.Node, env value.Environment) ([]value.Value, error) {
	out := make([]value.Value, len(nodes))
	for i, node := range nodes {
		v, err := in.Eval(node, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (in *Interpreter) evalAnd(n *types.AndNode, env value.Environment) (value.Value, error) {
	var result value.Value = value.Bool(true)
	for _, e := range n.Exprs {
		v, err := in.Eval(e, env)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(v) {
			return v, nil
		}
		result = v
	}

	return result, nil
}

func (in *Interpreter) evalOr(n *types.OrNode, env value.Environment) (value.Value, error) {
	var result value.Value = value.Bool(false)
	for _, e := range n.Exprs {
		v, err := in.Eval(e, env)
		if err != nil {
			return nil, err
		}
		if value.Truthy(v) {
			return v, nil
		}
		result = v
	}

	return result, nil
}

func (in *Interpreter) evalLet(n *types.LetNode, env value.Environment) (value.Value, error) {
	scope := env.Extend()
	for _, b := range n.Bindings {
		v, err := in.Eval(b.Init, scope)
		if err != nil {
			return nil, err
		}
		scope.Set(b.Name, v)
	}

	return in.evalSeq(n.Body, scope)
}

func (in *Interpreter) evalLoop(n *types.LoopNode, env value.Environment) (value.Value, error) {
	names := make([]string, len(n.Bindings))
	bindings := make([]value.Value, len(n.Bindings))
	scope := env.Extend()
	for i, b := range n.Bindings {
		v, err := in.Eval(b.Init, scope)
		if err != nil {
			return nil, err
		}
		names[i] = b.Name
		bindings[i] = v
		scope.Set(b.Name, v)
	}

	for {
		loopEnv := env.Extend()
		for i, name := range names {
			loopEnv.Set(name, bindings[i])
		}
		result, err := in.evalSeq(n.Body, loopEnv)
		if err != nil {
			var rs *recurSignal
			if errors.As(err, &rs) {
				if len(rs.args) != len(names) {
					return nil, corerr.Arityf("recur", fmt.Sprintf("%d", len(names)), len(rs.args))
				}
				bindings = rs.args

				continue
			}

			return nil, err
		}

		return result, nil
	}
}

func (in *Interpreter) evalDef(n *types.DefNode, env value.Environment) (value.Value, error) {
	va := in.Intern(n.NS, n.Name)
	if n.Init != nil {
		v, err := in.Eval(n.Init, env)
		if err != nil {
			return nil, err
		}
		va.Set(v)
	}

	return va, nil
}

func (in *Interpreter) evalApply(n *types.ApplyNode, env value.Environment) (value.Value, error) {
	fn, err := in.Eval(n.Fn, env)
	if err != nil {
		return nil, err
	}
	args, err := in.evalEach(n.Args, env)
	if err != nil {
		return nil, err
	}

	return in.Apply(fn, args)
}

// Apply invokes fn with args, the sole calling convention used whether fn
// is a user Function, a host Builtin, a PartialFn, a CompFn, or a MultiFn.
func (in *Interpreter) Apply(fn value.Value, args []value.Value) (value.Value, error) {
	switch f := fn.(type) {
	case *value.Function:
		return in.applyFunction(f, args)

	case *value.Builtin:
		return f.Apply(args)

	case *value.PartialFn:
		innerArgs := f.Args(args)

		return in.Apply(f.Fn, innerArgs)

	case *value.CompFn:
		return in.applyComp(f, args)

	case *value.MultiFn:
		return in.applyMultiFn(f, args)

	case *value.Keyword:
		return in.applyKeyword(f, args)

	default:
		return nil, corerr.Typef("apply", "%s is not callable", value.TypeName(fn))
	}
}

// applyKeyword implements keyword-as-lookup-function: (:k m) and
// (:k m default) look k up in m the same way (get m :k) would.
func (in *Interpreter) applyKeyword(k *value.Keyword, args []value.Value) (value.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, corerr.Arityf(value.Repr(k), "1 or 2", len(args))
	}
	def := value.Value(value.Nil{})
	if len(args) == 2 {
		def = args[1]
	}
	m, ok := args[0].(*value.Map)
	if !ok {
		return def, nil
	}

	return m.Get(k, def), nil
}

func (in *Interpreter) applyFunction(f *value.Function, args []value.Value) (value.Value, error) {
	body, ok := f.Body.([]types.Node)
	if !ok {
		return nil, corerr.New(corerr.Eval, "apply", "function %s has no analyzed body", f.Name)
	}

	bindings, err := bindParams(f, args)
	if err != nil {
		return nil, err
	}

	for {
		callEnv := f.Env.Extend()
		for name, v := range bindings {
			callEnv.Set(name, v)
		}
		result, err := in.evalSeq(body, callEnv)
		if err != nil {
			var rs *recurSignal
			if errors.As(err, &rs) {
				bindings, err = rebindParams(f, rs.args)
				if err != nil {
					return nil, err
				}

				continue
			}

			return nil, err
		}

		return result, nil
	}
}

func bindParams(f *value.Function, args []value.Value) (map[string]value.Value, error) {
	return rebindParams(f, args)
}

func rebindParams(f *value.Function, args []value.Value) (map[string]value.Value, error) {
	n := len(f.Params)
	if f.Variadic == "" {
		if len(args) != n {
			return nil, corerr.Arityf(f.Name, fmt.Sprintf("%d", n), len(args))
		}
	} else if len(args) < n {
		return nil, corerr.Arityf(f.Name, fmt.Sprintf("at least %d", n), len(args))
	}

	bindings := make(map[string]value.Value, n+1)
	for i, p := range f.Params {
		bindings[p] = args[i]
	}
	if f.Variadic != "" {
		bindings[f.Variadic] = value.NewList(args[n:]...)
	}

	return bindings, nil
}

func (in *Interpreter) applyComp(f *value.CompFn, args []value.Value) (value.Value, error) {
	if len(f.Fns) == 0 {
		if len(args) == 1 {
			return args[0], nil
		}

		return nil, corerr.Arityf("comp", "1", len(args))
	}
	result, err := in.Apply(f.Fns[len(f.Fns)-1], args)
	if err != nil {
		return nil, err
	}
	for i := len(f.Fns) - 2; i >= 0; i-- {
		result, err = in.Apply(f.Fns[i], []value.Value{result})
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (in *Interpreter) applyMultiFn(f *value.MultiFn, args []value.Value) (value.Value, error) {
	dispatchVal, err := in.Apply(f.DispatchFn, args)
	if err != nil {
		return nil, err
	}
	h := in.Hierarchy
	if f.Hierarchy != nil {
		if local, ok := f.Hierarchy.Payload.(*hierarchy.Hierarchy); ok {
			h = local
		}
	}
	if h == nil {
		h = hierarchy.Global()
	}
	method, err := hierarchy.Resolve(f, h, dispatchVal)
	if err != nil {
		return nil, err
	}

	return in.Apply(method, args)
}

func (in *Interpreter) evalQuasiquote(template value.Value, env value.Environment) (value.Value, error) {
	l, ok := template.(*value.List)
	if !ok {
		return template, nil
	}
	if l.IsEmpty() {
		return l, nil
	}
	if sym, ok := l.First().(*value.Symbol); ok && sym.NS == "" {
		switch sym.Name {
		case "unquote":
			arg := l.Rest().First()
			node, err := analyzer.New(in.CurrentNS).Analyze(arg)
			if err != nil {
				return nil, err
			}

			return in.Eval(node, env)
		}
	}

	elems := l.Elements()
	var out []value.Value
	for _, e := range elems {
		if sub, ok := e.(*value.List); ok && !sub.IsEmpty() {
			if sym, ok := sub.First().(*value.Symbol); ok && sym.NS == "" && sym.Name == "unquote-splicing" {
				arg := sub.Rest().First()
				node, err := analyzer.New(in.CurrentNS).Analyze(arg)
				if err != nil {
					return nil, err
				}
				v, err := in.Eval(node, env)
				if err != nil {
					return nil, err
				}
				spliced, err := value.SeqElements(v)
				if err != nil {
					return nil, err
				}
				out = append(out, spliced...)

				continue
			}
		}
		v, err := in.evalQuasiquote(e, env)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return value.NewList(out...), nil
}
