package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/gernest/sift/cell"
)

// Expr evaluates a boolean expression per cell over the environment
// {row, family, qualifier, ts, value}, with the byte fields exposed as
// strings. A true result keeps the cell; this is the opposite polarity of
// the comparison filters, which exclude on a match. Programs are compiled
// once at construction and evaluation errors drop the cell.
type Expr struct {
	Base
	src     string
	program *vm.Program
	env     map[string]any
}

func NewExpr(src string) (*Expr, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidArgument)
	}
	program, err := expr.Compile(src, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %v", ErrInvalidArgument, src, err)
	}
	return &Expr{src: src, program: program, env: make(map[string]any, 5)}, nil
}

func (f *Expr) Kind() Kind { return KindExpr }

func (f *Expr) FilterCell(c cell.Cell) ReturnCode {
	// The env map is reused; instances are single request owned.
	f.env["row"] = string(c.Row)
	f.env["family"] = string(c.Family)
	f.env["qualifier"] = string(c.Qualifier)
	f.env["ts"] = c.Ts
	f.env["value"] = string(c.Value)
	out, err := expr.Run(f.program, f.env)
	if err != nil {
		return Skip
	}
	if keep, ok := out.(bool); ok && keep {
		return Include
	}
	return Skip
}

func (f *Expr) MarshalBinary() ([]byte, error) {
	payload := appendBytesField(nil, 1, []byte(f.src))
	return marshalEnvelope(KindExpr, payload), nil
}

func (f *Expr) String() string { return fmt.Sprintf("expr %q", f.src) }

func parseExpr(payload []byte) (Filter, error) {
	src, err := oneBytesField(payload)
	if err != nil {
		return nil, err
	}
	return NewExpr(string(src))
}

func exprFromArgs(args [][]byte) (Filter, error) {
	if err := arity("expr", args, 1); err != nil {
		return nil, err
	}
	return NewExpr(string(args[0]))
}
