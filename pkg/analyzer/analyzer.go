package analyzer

import (
	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/types"
	"github.com/chaploud/clj-runtime/internal/value"
)

// Analyzer lowers reader forms into types.Node. It holds no mutable state
// of its own; NS is the namespace new def forms are recorded under.
type Analyzer struct {
	NS string
}

// New creates an Analyzer that records defs under ns.
func New(ns string) *Analyzer {
	return &Analyzer{NS: ns}
}

// Analyze lowers a single form into a Node.
func (a *Analyzer) Analyze(form value.Value) (types.Node, error) {
	switch f := form.(type) {
	case *value.Symbol:
		return &types.VarRefNode{Sym: f}, nil
	case *value.List:
		return a.analyzeList(f)
	default:
		return &types.LiteralNode{Val: form}, nil
	}
}

func (a *Analyzer) analyzeList(l *value.List) (types.Node, error) {
	if l.IsEmpty() {
		return &types.LiteralNode{Val: l}, nil
	}
	head, ok := l.First().(*value.Symbol)
	if !ok || head.NS != "" {
		return a.analyzeApply(l)
	}

	switch head.Name {
	case "if":
		return a.analyzeIf(l)
	case "do":
		return a.analyzeDo(l)
	case "let*", "let":
		return a.analyzeLet(l)
	case "fn", "fn*":
		return a.analyzeFn(l)
	case "def":
		return a.analyzeDef(l)
	case "quote":
		return a.analyzeQuote(l)
	case "quasiquote":
		return a.analyzeQuasiquote(l)
	case "and":
		return a.analyzeAnd(l)
	case "or":
		return a.analyzeOr(l)
	case "loop", "loop*":
		return a.analyzeLoop(l)
	case "recur":
		return a.analyzeRecur(l)
	case "delay":
		return a.analyzeDelay(l)
	case "lazy-seq":
		return a.analyzeLazySeq(l)
	default:
		return a.analyzeApply(l)
	}
}

func (a *Analyzer) rest(l *value.List) []value.Value {
	return l.Rest().Elements()
}

func (a *Analyzer) analyzeIf(l *value.List) (types.Node, error) {
	args := a.rest(l)
	if len(args) < 2 || len(args) > 3 {
		return nil, corerr.Arityf("if", "2 or 3", len(args))
	}
	cond, err := a.Analyze(args[0])
	if err != nil {
		return nil, err
	}
	then, err := a.Analyze(args[1])
	if err != nil {
		return nil, err
	}
	var elseNode types.Node
	if len(args) == 3 {
		elseNode, err = a.Analyze(args[2])
		if err != nil {
			return nil, err
		}
	}

	return &types.IfNode{Cond: cond, Then: then, Else: elseNode}, nil
}

func (a *Analyzer) analyzeDo(l *value.List) (types.Node, error) {
	nodes, err := a.analyzeEach(a.rest(l))
	if err != nil {
		return nil, err
	}

	return &types.DoNode{Exprs: nodes}, nil
}

func (a *Analyzer) analyzeAnd(l *value.List) (types.Node, error) {
	nodes, err := a.analyzeEach(a.rest(l))
	if err != nil {
		return nil, err
	}

	return &types.AndNode{Exprs: nodes}, nil
}

func (a *Analyzer) analyzeOr(l *value.List) (types.Node, error) {
	nodes, err := a.analyzeEach(a.rest(l))
	if err != nil {
		return nil, err
	}

	return &types.OrNode{Exprs: nodes}, nil
}

func (a *Analyzer) analyzeEach(forms []value.Value) ([]types.Node, error) {
	nodes := make([]types.Node, len(forms))
	for i, f := range forms {
		n, err := a.Analyze(f)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}

	return nodes, nil
}

func (a *Analyzer) bindingPairs(op string, vec value.Value) ([]types.LetBinding, error) {
	v, ok := vec.(*value.Vector)
	if !ok {
		return nil, corerr.Typef(op, "binding form must be a vector, got %s", value.TypeName(vec))
	}
	elems := v.Elements()
	if len(elems)%2 != 0 {
		return nil, corerr.New(corerr.Eval, op, "binding vector requires an even number of forms")
	}
	bindings := make([]types.LetBinding, 0, len(elems)/2)
	for i := 0; i < len(elems); i += 2 {
		sym, ok := elems[i].(*value.Symbol)
		if !ok {
			return nil, corerr.Typef(op, "binding name must be a symbol, got %s", value.TypeName(elems[i]))
		}
		init, err := a.Analyze(elems[i+1])
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, types.LetBinding{Name: sym.Name, Init: init})
	}

	return bindings, nil
}

func (a *Analyzer) analyzeLet(l *value.List) (types.Node, error) {
	args := a.rest(l)
	if len(args) < 1 {
		return nil, corerr.Arityf("let*", "at least 1", len(args))
	}
	bindings, err := a.bindingPairs("let*", args[0])
	if err != nil {
		return nil, err
	}
	body, err := a.analyzeEach(args[1:])
	if err != nil {
		return nil, err
	}

	return &types.LetNode{Bindings: bindings, Body: body}, nil
}

func (a *Analyzer) analyzeLoop(l *value.List) (types.Node, error) {
	args := a.rest(l)
	if len(args) < 1 {
		return nil, corerr.Arityf("loop*", "at least 1", len(args))
	}
	bindings, err := a.bindingPairs("loop*", args[0])
	if err != nil {
		return nil, err
	}
	body, err := a.analyzeEach(args[1:])
	if err != nil {
		return nil, err
	}

	return &types.LoopNode{Bindings: bindings, Body: body}, nil
}

func (a *Analyzer) analyzeRecur(l *value.List) (types.Node, error) {
	nodes, err := a.analyzeEach(a.rest(l))
	if err != nil {
		return nil, err
	}

	return &types.RecurNode{Args: nodes}, nil
}

func (a *Analyzer) analyzeFn(l *value.List) (types.Node, error) {
	args := a.rest(l)
	if len(args) < 1 {
		return nil, corerr.Arityf("fn*", "at least 1", len(args))
	}
	name := ""
	if sym, ok := args[0].(*value.Symbol); ok {
		name = sym.Name
		args = args[1:]
	}
	if len(args) < 1 {
		return nil, corerr.Arityf("fn*", "a parameter vector", len(args))
	}
	paramVec, ok := args[0].(*value.Vector)
	if !ok {
		return nil, corerr.Typef("fn*", "parameter list must be a vector, got %s", value.TypeName(args[0]))
	}
	params, variadic, err := parseParams(paramVec.Elements())
	if err != nil {
		return nil, err
	}
	body, err := a.analyzeEach(args[1:])
	if err != nil {
		return nil, err
	}

	return &types.FnNode{Name: name, Params: params, Variadic: variadic, Body: body}, nil
}

func parseParams(elems []value.Value) (params []string, variadic string, err error) {
	for i := 0; i < len(elems); i++ {
		sym, ok := elems[i].(*value.Symbol)
		if !ok {
			return nil, "", corerr.Typef("fn*", "parameter must be a symbol, got %s", value.TypeName(elems[i]))
		}
		if sym.Name == "&" {
			if i+1 >= len(elems) {
				return nil, "", corerr.New(corerr.Eval, "fn*", "missing rest parameter name after &")
			}
			restSym, ok := elems[i+1].(*value.Symbol)
			if !ok {
				return nil, "", corerr.Typef("fn*", "rest parameter must be a symbol, got %s", value.TypeName(elems[i+1]))
			}
			variadic = restSym.Name

			break
		}
		params = append(params, sym.Name)
	}

	return params, variadic, nil
}

func (a *Analyzer) analyzeDef(l *value.List) (types.Node, error) {
	args := a.rest(l)
	if len(args) < 1 || len(args) > 2 {
		return nil, corerr.Arityf("def", "1 or 2", len(args))
	}
	sym, ok := args[0].(*value.Symbol)
	if !ok {
		return nil, corerr.Typef("def", "name must be a symbol, got %s", value.TypeName(args[0]))
	}
	var init types.Node
	if len(args) == 2 {
		n, err := a.Analyze(args[1])
		if err != nil {
			return nil, err
		}
		init = n
	}

	return &types.DefNode{NS: a.NS, Name: sym.Name, Init: init}, nil
}

func (a *Analyzer) analyzeQuote(l *value.List) (types.Node, error) {
	args := a.rest(l)
	if len(args) != 1 {
		return nil, corerr.Arityf("quote", "1", len(args))
	}

	return &types.QuoteNode{Form: args[0]}, nil
}

func (a *Analyzer) analyzeQuasiquote(l *value.List) (types.Node, error) {
	args := a.rest(l)
	if len(args) != 1 {
		return nil, corerr.Arityf("quasiquote", "1", len(args))
	}

	return &types.QuasiquoteNode{Template: args[0]}, nil
}

func (a *Analyzer) analyzeDelay(l *value.List) (types.Node, error) {
	body, err := a.analyzeEach(a.rest(l))
	if err != nil {
		return nil, err
	}

	return &types.DelayNode{Body: body}, nil
}

func (a *Analyzer) analyzeLazySeq(l *value.List) (types.Node, error) {
	body, err := a.analyzeEach(a.rest(l))
	if err != nil {
		return nil, err
	}

	return &types.LazySeqNode{Body: body}, nil
}

func (a *Analyzer) analyzeApply(l *value.List) (types.Node, error) {
	elems := l.Elements()
	fnNode, err := a.Analyze(elems[0])
	if err != nil {
		return nil, err
	}
	argNodes, err := a.analyzeEach(elems[1:])
	if err != nil {
		return nil, err
	}

	return &types.ApplyNode{Fn: fnNode, Args: argNodes}, nil
}
