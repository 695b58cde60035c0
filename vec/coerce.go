package vec

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	geom "github.com/twpayne/go-geom"
)

var (
	decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	radixPattern   = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// Coerce converts x to a component value. Anything that is not
// a number, or does not parse as one, becomes 0. NaN also becomes 0.
func Coerce(x interface{}) float64 {
	f, err := Scalar(x)
	if err != nil {
		return 0
	}
	return f
}

// Scalar converts x to a float64, returning ErrInvalidOperand if
// x is not a number or a string holding one.
func Scalar(x interface{}) (f float64, err error) {
	switch x := x.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case bool:
		if x {
			f = 1
		}
	case string:
		if f, err = ParseNumber(x); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOperand, x)
		}
	case json.Number:
		if f, err = x.Float64(); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOperand, string(x))
		}
	case decimal.Decimal:
		f, _ = x.Float64()
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidOperand, x)
	}
	if math.IsNaN(f) {
		return 0, ErrInvalidOperand
	}
	return
}

// ParseNumber reads a number the way JavaScript's Number does:
// decimal or 0x/0o/0b integer literals and Infinity, surrounded by
// optional whitespace. Digit separators, hex floats and NaN are
// rejected, and so is the empty string. Decimals out of float64 range
// become ±Inf or 0.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "Infinity", s == "+Infinity":
		return math.Inf(1), nil
	case s == "-Infinity":
		return math.Inf(-1), nil
	case radixPattern.MatchString(s):
		i, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return 0, strconv.ErrSyntax
		}
		f, _ := new(big.Float).SetInt(i).Float64()
		return f, nil
	case decimalPattern.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if errors.Is(err, strconv.ErrRange) {
			err = nil
		}
		return f, err
	}
	return 0, strconv.ErrSyntax
}

// FromAny converts a vector-like value into a Vector. Slices of
// raw values are coerced element by element.
func FromAny(x interface{}) (Vector, error) {
	switch x := x.(type) {
	case Vector:
		return x, nil
	case *Vector:
		if x == nil {
			return nil, ErrNotVector
		}
		return *x, nil
	case []float64:
		return Vector(x), nil
	case []interface{}:
		return Of(x...), nil
	case []string:
		v := make(Vector, len(x))
		for i, s := range x {
			v[i] = Coerce(s)
		}
		return v, nil
	case geom.Coord:
		return FromCoord(x), nil
	case *geom.Point:
		if x == nil || x.Empty() {
			return nil, ErrNotVector
		}
		return FromCoord(x.Coords()), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotVector, x)
}
