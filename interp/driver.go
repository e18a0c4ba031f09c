package interp

import (
	"context"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/symbol"
	"go.uber.org/zap"
)

// Version selects which of the four Brewin semantic levels the Interpreter
// enforces. The four levels share almost all of their machinery, so they
// live in one evaluator gated on this value rather than in four forked
// packages. See DESIGN.md for the alternative considered and why it was
// rejected.
type Version int

const (
	V1 Version = iota + 1
	V2
	V3
	V4
)

// Config configures a new Interpreter.
type Config struct {
	Version Version
	IO      HostIO
	// Logger receives internal diagnostics (program registration, frame
	// push/pop). It never sees user program output; that always goes
	// through IO. A nil Logger installs zap's no-op logger.
	Logger *zap.SugaredLogger
}

// Interpreter is the top-level driver: it owns the global variable scope,
// the global function scope (builtins + user functions), and the v3 type
// registry, and exposes Run as the single entry point once an external
// parser has produced an ast.Node tree.
type Interpreter struct {
	version     Version
	io          HostIO
	log         *zap.SugaredLogger
	types       *TypeRegistry
	globalVars  *VariableScope
	globalFuncs *FunctionScope
}

// New creates an Interpreter ready to Run a program.
func New(cfg Config) *Interpreter {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	io := cfg.IO
	if io == nil {
		panic("interp: Config.IO must be set")
	}
	ip := &Interpreter{
		version:     cfg.Version,
		io:          io,
		log:         logger,
		types:       NewTypeRegistry(),
		globalVars:  newVariableScope(nil),
		globalFuncs: newFunctionScope(nil),
	}
	registerBuiltins(ip)
	return ip
}

// Run validates the program root, registers struct types (v3) and user
// functions into the global scopes, then invokes main(). A missing main is
// a NAME error. Any fatal error is additionally reported through the host
// façade before being returned to the caller.
func (ip *Interpreter) Run(ctx context.Context, root ast.Node) error {
	err := Recover(func() { ip.run(ctx, root) })
	if err != nil {
		if e, ok := err.(*Error); ok {
			ip.io.ReportError(e.Kind, e.Message)
		}
	}
	return err
}

func (ip *Interpreter) run(ctx context.Context, root ast.Node) {
	if root.Kind() != ast.KindProgram {
		panic(newError(Internal, root, "expected a program node, found %q", root.Kind()))
	}

	if ip.version >= V3 {
		for _, s := range root.Attrs("structs") {
			ip.registerStruct(s)
		}
	}
	for _, fn := range root.Attrs("functions") {
		ip.registerFunc(fn)
	}
	ip.log.Debugw("program registered",
		"version", ip.version,
		"functions", len(root.Attrs("functions")),
		"structs", len(root.Attrs("structs")))

	main := ip.globalFuncs.lookup(root, symbol.Intern("main"), 0)
	main.call(ctx, root, ip, nil)
}

func (ip *Interpreter) registerStruct(n ast.Node) {
	name, _ := n.Str("name")
	var fields []FieldDef
	for _, f := range n.Attrs("fields") {
		fname, _ := f.Str("name")
		ftype, _ := f.Str("var_type")
		fields = append(fields, FieldDef{Name: symbol.Intern(fname), VarType: symbol.Intern(ftype)})
	}
	ip.types.RegisterStruct(n, name, fields)
}

func (ip *Interpreter) registerFunc(n ast.Node) {
	name, _ := n.Str("name")
	var params []Param
	for _, a := range n.Attrs("args") {
		pname, _ := a.Str("name")
		p := Param{Name: symbol.Intern(pname)}
		if ip.version == V3 {
			vtype, _ := a.Str("var_type")
			p.DeclaredType = ip.types.MustLookup(a, vtype)
		}
		params = append(params, p)
	}
	f := &Func{
		name:   symbol.Intern(name),
		params: params,
		body:   n.Attrs("statements"),
	}
	if ip.version == V3 {
		rtype, hasRet := n.Str("return_type")
		if hasRet && rtype != "void" {
			f.retType = ip.types.MustLookup(n, rtype)
		} else {
			f.isVoid = true
		}
	}
	ip.globalFuncs.add(f)
}
