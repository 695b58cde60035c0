package vec

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidOperand is returned when a scalar operand is not a number.
	ErrInvalidOperand = errors.New("vec: invalid operand")

	// ErrNotVector is returned when a value can not be used as a Vector.
	ErrNotVector = errors.New("vec: not a vector")
)

// Vector is a float64 vector of any dimension. The dimension is
// the number of components and may change over its lifetime.
type Vector []float64

/* Constructors */

// New creates a new Vector from provided values
func New(vs ...float64) Vector {
	v := make(Vector, len(vs))
	copy(v, vs)
	return v
}

// Of creates a new Vector, coercing each value with Coerce.
func Of(vs ...interface{}) Vector {
	v := make(Vector, len(vs))
	for i, x := range vs {
		v[i] = Coerce(x)
	}
	return v
}

// Zero creates a zero vector of dimension n.
func Zero(n int) Vector {
	return make(Vector, n)
}

// Clone returns an independent copy of v
func (v Vector) Clone() Vector {
	return New(v...)
}

/* Dimension */

// Dim returns the dimension of v
func (v Vector) Dim() int {
	return len(v)
}

// Push appends coerced values to v, growing its dimension.
func (v *Vector) Push(vs ...interface{}) {
	for _, x := range vs {
		*v = append(*v, Coerce(x))
	}
}

// Resize grows v with zeros or truncates it to dimension n.
func (v *Vector) Resize(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n <= len(*v):
		*v = (*v)[:n]
	case n <= cap(*v):
		old := len(*v)
		*v = (*v)[:n]
		for i := old; i < n; i++ {
			(*v)[i] = 0
		}
	default:
		*v = append(*v, make(Vector, n-len(*v))...)
	}
}

/* Getters */

// At returns the value at dimension i, or 0 if v is too short.
func (v Vector) At(i int) float64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

// X value of v
func (v Vector) X() float64 { return v.At(0) }

// Y value of v
func (v Vector) Y() float64 { return v.At(1) }

// Z value of v
func (v Vector) Z() float64 { return v.At(2) }

// W value of v
func (v Vector) W() float64 { return v.At(3) }

/* Setters */

// Set writes x at dimension i, growing v with zeros if needed.
// Negative indexes are ignored.
func (v *Vector) Set(i int, x float64) {
	if i < 0 {
		return
	}
	if i >= len(*v) {
		v.Resize(i + 1)
	}
	(*v)[i] = x
}

// SetX sets the first component of v
func (v *Vector) SetX(x float64) { v.Set(0, x) }

// SetY sets the second component of v
func (v *Vector) SetY(y float64) { v.Set(1, y) }

// SetZ sets the third component of v
func (v *Vector) SetZ(z float64) { v.Set(2, z) }

// SetW sets the fourth component of v
func (v *Vector) SetW(w float64) { v.Set(3, w) }

/* Operations */

// Add v1 to v2. If out is not nil the result is written into it,
// reusing its storage, and also returned.
func Add(v1, v2 Vector, out *Vector) Vector {
	return combine(v1, v2, out, func(l, r float64) float64 { return l + r })
}

// Sub right from left, using out the same way as Add.
func Sub(left, right Vector, out *Vector) Vector {
	return combine(left, right, out, func(l, r float64) float64 { return l - r })
}

func combine(left, right Vector, out *Vector, op func(l, r float64) float64) Vector {
	var res Vector
	if out != nil {
		res = *out
	}
	ForEvery(left, right, func(l, r float64, i int) Step {
		if i < len(res) {
			res[i] = op(l, r)
		} else {
			res = append(res, op(l, r))
		}
		return Continue
	})
	if res == nil {
		res = Vector{}
	}
	if out != nil {
		*out = res
	}
	return res
}

// Multiply scales v by s. Fails with ErrInvalidOperand if s is NaN,
// or if a component has no defined product (0 * ±Inf).
func Multiply(v Vector, s float64) (Vector, error) {
	if math.IsNaN(s) {
		return nil, ErrInvalidOperand
	}
	res := make(Vector, len(v))
	for i := range v {
		if res[i] = v[i] * s; math.IsNaN(res[i]) {
			return nil, fmt.Errorf("%w: %v * %v", ErrInvalidOperand, v[i], s)
		}
	}
	return res, nil
}

// MultiplyAny scales a vector-like value by a number-like value.
// v must be accepted by FromAny and s by Scalar.
func MultiplyAny(v, s interface{}) (Vector, error) {
	vv, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	ss, err := Scalar(s)
	if err != nil {
		return nil, err
	}
	return Multiply(vv, ss)
}

// Magnitude returns the L2 norm of v. Components are scaled by the
// largest one first, so finite input never underflows to 0.
func Magnitude(v Vector) float64 {
	m, s := scaledNorm(v)
	return m * s
}

// scaledNorm splits ‖v‖ into m * s, where m is the largest
// absolute component.
func scaledNorm(v Vector) (m, s float64) {
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	if m == 0 || math.IsInf(m, 1) {
		return m, 1
	}
	for _, x := range v {
		x /= m
		s += x * x
	}
	return m, math.Sqrt(s)
}

// Normalize returns a new unit vector in the direction of v.
// A zero vector normalizes to a zero vector of the same dimension.
// Infinite components dominate, finite ones go to 0.
func Normalize(v Vector) Vector {
	res := make(Vector, len(v))
	m, s := scaledNorm(v)
	switch {
	case m == 0:
		return res
	case math.IsInf(m, 1):
		for i, x := range v {
			if math.IsInf(x, 0) {
				res[i] = math.Copysign(1, x)
			}
		}
		return Normalize(res)
	}
	for i := range v {
		res[i] = v[i] / m / s
	}
	return res
}

// Dot returns the dot product of v1 and v2 (v1⋅v2)
func Dot(v1, v2 Vector) (d float64) {
	ForEvery(v1, v2, func(l, r float64, _ int) Step {
		d += l * r
		return Continue
	})
	return
}

// Equals returns true if every pair of components is exactly equal.
func Equals(v1, v2 Vector) bool {
	eq := true
	ForEvery(v1, v2, func(l, r float64, _ int) Step {
		if l != r {
			eq = false
			return Stop
		}
		return Continue
	})
	return eq
}

// ApproxEquals is like Equals but allows each pair to differ by eps.
func ApproxEquals(v1, v2 Vector, eps float64) bool {
	eq := true
	ForEvery(v1, v2, func(l, r float64, _ int) Step {
		if math.Abs(l-r) > eps {
			eq = false
			return Stop
		}
		return Continue
	})
	return eq
}

/* Methods */

// Add o to v
func (v Vector) Add(o Vector, out *Vector) Vector {
	return Add(v, o, out)
}

// Sub o from v
func (v Vector) Sub(o Vector, out *Vector) Vector {
	return Sub(v, o, out)
}

// Multiply scales v by s
func (v Vector) Multiply(s float64) (Vector, error) {
	return Multiply(v, s)
}

// Magnitude of v
func (v Vector) Magnitude() float64 {
	return Magnitude(v)
}

// Normalize returns the normalized vector of v. v is unchanged.
func (v Vector) Normalize() Vector {
	return Normalize(v)
}

// Dot returns the dot product of v and o
func (v Vector) Dot(o Vector) float64 {
	return Dot(v, o)
}

// Equals returns true if v and o are equal
func (v Vector) Equals(o Vector) bool {
	return Equals(v, o)
}

// ForEvery iterates v and o pairwise
func (v Vector) ForEvery(o Vector, f func(l, r float64, i int) Step) {
	ForEvery(v, o, f)
}
