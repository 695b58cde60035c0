package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/colinrgodsey/vecd/vec"
)

// RegisterPrefix marks an arg as a register reference ($name).
const RegisterPrefix = '$'

var (
	// ErrMissingArg is returned when a command has too few args
	ErrMissingArg = errors.New("expr: missing arg")

	// ErrUnknownRegister is returned when a referenced register is unset
	ErrUnknownRegister = errors.New("expr: unknown register")

	// ErrNotRegister is returned when an arg must name a register
	ErrNotRegister = errors.New("expr: not a register")
)

// Registers holds named vectors.
type Registers map[string]vec.Vector

// Args provides methods for reading positional args
type Args []string

// Get returns the raw arg at i
func (a Args) Get(i int) (string, error) {
	if i < 0 || i >= len(a) {
		return "", fmt.Errorf("%w %v", ErrMissingArg, i+1)
	}
	return a[i], nil
}

// Register returns the register name referenced by arg i.
func (a Args) Register(i int) (string, error) {
	str, err := a.Get(i)
	if err != nil {
		return "", err
	}
	name, ok := registerName(str)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotRegister, str)
	}
	return name, nil
}

// Vector reads arg i as a vector, either a register or a
// comma separated literal (1,2,3) whose components are coerced.
func (a Args) Vector(i int, regs Registers) (vec.Vector, error) {
	str, err := a.Get(i)
	if err != nil {
		return nil, err
	}
	if name, ok := registerName(str); ok {
		v, ok := regs[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownRegister, name)
		}
		return v, nil
	}
	return ParseVector(str), nil
}

// Scalar reads arg i as a number. A register works if it holds
// a 1-dimensional vector.
func (a Args) Scalar(i int, regs Registers) (float64, error) {
	str, err := a.Get(i)
	if err != nil {
		return 0, err
	}
	if _, ok := registerName(str); ok {
		v, err := a.Vector(i, regs)
		if err != nil {
			return 0, err
		}
		if v.Dim() != 1 {
			return 0, fmt.Errorf("%w: %v is not a scalar", vec.ErrInvalidOperand, v)
		}
		return v.X(), nil
	}
	return vec.Scalar(str)
}

// Int reads arg i as a whole number
func (a Args) Int(i int, regs Registers) (int, error) {
	f, err := a.Scalar(i, regs)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%w: %v is not an integer", vec.ErrInvalidOperand, f)
	}
	return int(f), nil
}

// ParseVector reads a comma separated component list. Components
// that are not numbers are stored as 0.
func ParseVector(str string) vec.Vector {
	spl := strings.Split(str, ",")
	v := make(vec.Vector, 0, len(spl))
	for _, s := range spl {
		v.Push(s)
	}
	return v
}

func registerName(str string) (string, bool) {
	if len(str) < 2 || str[0] != RegisterPrefix {
		return "", false
	}
	return str[1:], true
}

func (a Args) String() string {
	return strings.Join(a, " ")
}
