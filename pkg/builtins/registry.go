package builtins

import (
	"bufio"
	"io"

	"github.com/chaploud/clj-runtime/internal/allocator"
	"github.com/chaploud/clj-runtime/internal/value"
	"github.com/chaploud/clj-runtime/pkg/interpreter"
)

// Registry wires every built-in function into an Interpreter's var table.
// Arena is a scratch-buffer pool created with the registry; none of the
// built-ins installed here draws from it.
type Registry struct {
	In    *interpreter.Interpreter
	Out   *bufio.Writer
	Arena *allocator.Arena
}

// NewRegistry creates a Registry that installs into in and writes print
// output to out.
func NewRegistry(in *interpreter.Interpreter, out io.Writer) *Registry {
	return &Registry{
		In:    in,
		Out:   bufio.NewWriter(out),
		Arena: allocator.New(8),
	}
}

// BuiltinFn is the host call signature every registered function has.
type BuiltinFn func(args []value.Value) (value.Value, error)

func (r *Registry) def(name string, fn BuiltinFn) {
	r.In.Intern(r.In.CurrentNS, name).Set(value.NewBuiltin(name, fn))
}

// InstallAll registers every built-in category into the interpreter.
func (r *Registry) InstallAll() {
	r.installArithmetic()
	r.installBitOps()
	r.installComparison()
	r.installPredicates()
	r.installCollections()
	r.installCells()
	r.installReductions()
	r.installStrings()
	r.installCasts()
	r.installRegex()
	r.installPrint()
	r.installMultimethods()
	r.installEval()
	r.installGensym()
	r.installMeta()
	r.Out.Flush()
}
