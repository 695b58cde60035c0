package vec

import (
	"math"

	"github.com/shopspring/decimal"
	geom "github.com/twpayne/go-geom"
)

/* go-geom */

// FromCoord creates a Vector from a geom.Coord, copying its values.
func FromCoord(c geom.Coord) Vector {
	return New(c...)
}

// Coord returns a copy of v as a geom.Coord
func (v Vector) Coord() geom.Coord {
	c := make(geom.Coord, len(v))
	copy(c, v)
	return c
}

// Point returns v as a geom.Point, zero padded to at least 2 dimensions.
func (v Vector) Point() *geom.Point {
	l := layout(len(v))
	c := v.Coord()
	for len(c) < l.Stride() {
		c = append(c, 0)
	}
	return geom.NewPointFlat(l, c)
}

// Bounds returns the componentwise minimum and maximum of vs, with
// missing components treated as 0.
func Bounds(vs ...Vector) (lo, hi Vector) {
	n := 0
	for _, v := range vs {
		if len(v) > n {
			n = len(v)
		}
	}
	if len(vs) == 0 {
		return Vector{}, Vector{}
	}

	b := geom.NewBounds(layout(n))
	for _, v := range vs {
		v = v.Clone()
		v.Resize(n)
		b.Extend(v.Point())
	}

	lo, hi = make(Vector, n), make(Vector, n)
	for i := 0; i < n; i++ {
		lo[i], hi[i] = b.Min(i), b.Max(i)
	}
	return
}

func layout(dim int) geom.Layout {
	switch {
	case dim <= 2:
		return geom.XY
	case dim == 3:
		return geom.XYZ
	case dim == 4:
		return geom.XYZM
	}
	return geom.Layout(dim)
}

/* decimal */

// Decimals returns the components of v as decimals. Infinite
// components have no decimal form and fail with ErrInvalidOperand.
func (v Vector) Decimals() ([]decimal.Decimal, error) {
	ds := make([]decimal.Decimal, len(v))
	for i, x := range v {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, ErrInvalidOperand
		}
		ds[i] = decimal.NewFromFloat(x)
	}
	return ds, nil
}
