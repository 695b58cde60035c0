package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/colinrgodsey/vecd/config"
	"github.com/colinrgodsey/vecd/expr"
	"github.com/colinrgodsey/vecd/io"
	"github.com/colinrgodsey/vecd/vec"
)

// ErrUnknownOp is returned for commands the evaluator does not know
var ErrUnknownOp = errors.New("pipeline: unknown op")

type opFunc func(h *evalHandler, args expr.Args) (io.Any, error)

var ops = map[string]opFunc{
	"SET":    (*evalHandler).set,
	"GET":    (*evalHandler).get,
	"PUSH":   (*evalHandler).push,
	"DEL":    (*evalHandler).del,
	"LIST":   (*evalHandler).list,
	"ADD":    (*evalHandler).add,
	"SUB":    (*evalHandler).sub,
	"MUL":    (*evalHandler).mul,
	"DOT":    (*evalHandler).dot,
	"MAG":    (*evalHandler).mag,
	"NORM":   (*evalHandler).norm,
	"EQ":     (*evalHandler).eq,
	"DIM":    (*evalHandler).dim,
	"AT":     (*evalHandler).at,
	"BOUNDS": (*evalHandler).bounds,
	"DEG":    scalarOp(vec.ToDegrees),
	"RAD":    scalarOp(vec.ToRadians),
	"ABSDEG": scalarOp(vec.AbsDegree),
	OpLine:   func(*evalHandler, expr.Args) (io.Any, error) { return nil, nil },
}

type evalHandler struct {
	head io.Conn
	conf config.Config
	regs expr.Registers
}

// EvalHandler evaluates expr.Commands read from head against a set
// of registers preloaded from conf, replying with the result (or
// error) and an ok line. Errors read from head are passed back as is.
// Closes head once head is done.
func EvalHandler(conf config.Config) func(head io.Conn) {
	return func(head io.Conn) {
		h := evalHandler{head: head, conf: conf, regs: make(expr.Registers)}

		if presets, err := conf.Presets(); err != nil {
			head.Write(fmt.Sprintf("warn:ignoring preset registers: %v", err))
		} else if len(presets) > 0 {
			for name, v := range presets {
				h.regs[name] = v
			}
			head.Write(fmt.Sprintf("info:loaded %v preset registers", len(presets)))
		}

		for msg := range head.Rc() {
			switch msg := msg.(type) {
			case expr.Command:
				h.eval(msg)
			case error:
				head.Write(msg)
			default:
				head.Write(fmt.Sprintf("warn:dropping unknown message %v", msg))
			}
		}
		head.Close()
	}
}

func (h *evalHandler) eval(c expr.Command) {
	op, ok := ops[c.Op]
	var res io.Any
	var err error
	if !ok {
		err = fmt.Errorf("%w %v", ErrUnknownOp, c.Op)
	} else {
		res, err = op(h, c.Args)
	}

	switch {
	case err != nil:
		h.head.Write(err)
	case res != nil:
		h.write(res)
	}

	if h.conf.Quiet {
		return
	}
	switch c.Num {
	case -1:
		h.head.Write("ok")
	default:
		h.head.Write(fmt.Sprintf("ok N%v", c.Num))
	}
}

func (h *evalHandler) write(res io.Any) {
	switch res := res.(type) {
	case vec.Vector:
		h.head.Write(res.Format(h.conf.Precision))
	case float64:
		h.head.Write(vec.FormatScalar(res, h.conf.Precision))
	case []string:
		for _, line := range res {
			h.head.Write(line)
		}
	default:
		h.head.Write(res)
	}
}

/* Registers */

func (h *evalHandler) set(args expr.Args) (io.Any, error) {
	name, err := args.Register(0)
	if err != nil {
		return nil, err
	}
	v, err := args.Vector(1, h.regs)
	if err != nil {
		return nil, err
	}
	h.regs[name] = v.Clone()
	return v, nil
}

func (h *evalHandler) get(args expr.Args) (io.Any, error) {
	return args.Vector(0, h.regs)
}

// PUSH $name vec... appends to a register, creating it if needed.
func (h *evalHandler) push(args expr.Args) (io.Any, error) {
	name, err := args.Register(0)
	if err != nil {
		return nil, err
	}
	v := h.regs[name]
	for i := 1; i < len(args); i++ {
		o, err := args.Vector(i, h.regs)
		if err != nil {
			return nil, err
		}
		for _, x := range o {
			v.Push(x)
		}
	}
	if v == nil {
		v = vec.New()
	}
	h.regs[name] = v
	return v, nil
}

func (h *evalHandler) del(args expr.Args) (io.Any, error) {
	name, err := args.Register(0)
	if err != nil {
		return nil, err
	}
	if _, ok := h.regs[name]; !ok {
		return nil, fmt.Errorf("%w %q", expr.ErrUnknownRegister, name)
	}
	delete(h.regs, name)
	return nil, nil
}

func (h *evalHandler) list(expr.Args) (io.Any, error) {
	names := make([]string, 0, len(h.regs))
	for name := range h.regs {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%c%v %v", expr.RegisterPrefix, name, h.regs[name].Format(h.conf.Precision))
	}
	return lines, nil
}

/* Arithmetic */

func (h *evalHandler) add(args expr.Args) (io.Any, error) {
	return h.combine(args, vec.Add)
}

func (h *evalHandler) sub(args expr.Args) (io.Any, error) {
	return h.combine(args, vec.Sub)
}

// OP a b [$out] writes the result into register out if given.
func (h *evalHandler) combine(args expr.Args, f func(l, r vec.Vector, out *vec.Vector) vec.Vector) (io.Any, error) {
	l, r, err := h.vectors(args)
	if err != nil {
		return nil, err
	}
	if len(args) < 3 {
		return f(l, r, nil), nil
	}
	name, err := args.Register(2)
	if err != nil {
		return nil, err
	}
	out := h.regs[name]
	res := f(l, r, &out)
	h.regs[name] = out
	return res, nil
}

func (h *evalHandler) mul(args expr.Args) (io.Any, error) {
	v, err := args.Vector(0, h.regs)
	if err != nil {
		return nil, err
	}
	s, err := args.Scalar(1, h.regs)
	if err != nil {
		return nil, err
	}
	return v.Multiply(s)
}

func (h *evalHandler) dot(args expr.Args) (io.Any, error) {
	l, r, err := h.vectors(args)
	if err != nil {
		return nil, err
	}
	return vec.Dot(l, r), nil
}

func (h *evalHandler) mag(args expr.Args) (io.Any, error) {
	v, err := args.Vector(0, h.regs)
	if err != nil {
		return nil, err
	}
	return v.Magnitude(), nil
}

func (h *evalHandler) norm(args expr.Args) (io.Any, error) {
	v, err := args.Vector(0, h.regs)
	if err != nil {
		return nil, err
	}
	return v.Normalize(), nil
}

func (h *evalHandler) eq(args expr.Args) (io.Any, error) {
	l, r, err := h.vectors(args)
	if err != nil {
		return nil, err
	}
	return strconv.FormatBool(vec.Equals(l, r)), nil
}

func (h *evalHandler) dim(args expr.Args) (io.Any, error) {
	v, err := args.Vector(0, h.regs)
	if err != nil {
		return nil, err
	}
	return strconv.Itoa(v.Dim()), nil
}

func (h *evalHandler) at(args expr.Args) (io.Any, error) {
	v, err := args.Vector(0, h.regs)
	if err != nil {
		return nil, err
	}
	i, err := args.Int(1, h.regs)
	if err != nil {
		return nil, err
	}
	return v.At(i), nil
}

// BOUNDS vec... replies with the min and max corners on two lines.
func (h *evalHandler) bounds(args expr.Args) (io.Any, error) {
	vs := make([]vec.Vector, 0, len(args))
	for i := 0; i < len(args) || i == 0; i++ {
		v, err := args.Vector(i, h.regs)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	lo, hi := vec.Bounds(vs...)
	return []string{lo.Format(h.conf.Precision), hi.Format(h.conf.Precision)}, nil
}

func (h *evalHandler) vectors(args expr.Args) (l, r vec.Vector, err error) {
	if l, err = args.Vector(0, h.regs); err != nil {
		return
	}
	r, err = args.Vector(1, h.regs)
	return
}

func scalarOp(f func(float64) float64) opFunc {
	return func(h *evalHandler, args expr.Args) (io.Any, error) {
		s, err := args.Scalar(0, h.regs)
		if err != nil {
			return nil, err
		}
		return f(s), nil
	}
}
