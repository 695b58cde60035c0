package vec

import (
	"math"
	"testing"
)

// Vector space properties, for vectors of growing dimension.

func TestCommutative(t *testing.T) {
	var p, q Vector
	for i := 0; i < 4; i++ {
		p.Push(0)
		q.Push(maxSafe)
		if !p.Add(q, nil).Equals(q.Add(p, nil)) {
			t.Fatalf("P+Q != Q+P for %v %v", p, q)
		}
	}

	p, q = New(1, 2), New(1, 1, 1)
	if !p.Add(q, nil).Equals(q.Add(p, nil)) {
		t.Fatalf("Mismatched P+Q != Q+P")
	}
}

func TestAssociative(t *testing.T) {
	var p, q, r Vector
	for i := 0; i < 4; i++ {
		p.Push(minSafe)
		q.Push(maxSafe)
		r.Push(maxSafe)
		pqr := r.Add(p.Add(q, nil), nil)
		rqp := p.Add(q.Add(r, nil), nil)
		if !pqr.Equals(rqp) {
			t.Fatalf("(P+Q)+R != P+(Q+R): %v %v", pqr, rqp)
		}
	}

	p, q, r = New(1, 2), New(3), New(4, 5, 6)
	if !p.Add(q, nil).Add(r, nil).Equals(p.Add(q.Add(r, nil), nil)) {
		t.Fatalf("Mismatched associativity failed")
	}
}

func TestScalarAssociative(t *testing.T) {
	var p1, p2 Vector
	for i := 1; i <= 4; i++ {
		p1.Push(minSafe)
		p2.Push(maxSafe)
		// powers of two keep the large values exact
		a := math.Pow(2, float64(i))
		b := -1 / a
		for _, p := range []Vector{p1, p2} {
			if !mul(t, p, a*b).Equals(mul(t, mul(t, p, b), a)) {
				t.Fatalf("(ab)P != a(bP) for %v", p)
			}
		}
	}

	p := New(1, -2, 3, -4)
	for a := -4.0; a <= 4; a++ {
		for b := -4.0; b <= 4; b++ {
			if !mul(t, p, a*b).Equals(mul(t, mul(t, p, b), a)) {
				t.Fatalf("(ab)P != a(bP) for a=%v b=%v", a, b)
			}
		}
	}
}

func TestDistributive(t *testing.T) {
	var p, q Vector
	for i := 1; i <= 4; i++ {
		p.Push(-i)
		q.Push(i * 3)
		a := float64(i)
		apq := mul(t, p.Add(q, nil), a)
		ap := mul(t, p, a)
		aq := mul(t, q, a)
		if !apq.Equals(ap.Add(aq, nil)) {
			t.Fatalf("a(P+Q) != aP+aQ: %v %v", apq, ap.Add(aq, nil))
		}
	}
}

func TestScalarDistributive(t *testing.T) {
	var p Vector
	for i := 1; i <= 4; i++ {
		p.Push(i * 7)
		a, b := float64(i), float64(-2*i)
		if !mul(t, p, a+b).Equals(mul(t, p, a).Add(mul(t, p, b), nil)) {
			t.Fatalf("(a+b)P != aP+bP for %v", p)
		}
	}
}

// Magnitude properties.

func TestMagnitudeProperties(t *testing.T) {
	var p0, p1, p2, q1, q2 Vector
	for i := 0; i < 4; i++ {
		p0.Push(0)
		p1.Push(maxSafe)
		p2.Push(minSafe)
		q1.Push(i + 1)
		q2.Push(-(i + 1))

		if p0.Magnitude() != 0 {
			t.Fatalf("Zero vector should have a magnitude of zero")
		}
		for _, p := range []Vector{p1, p2, q1, q2} {
			if !(p.Magnitude() > 0) {
				t.Fatalf("Non zero vector %v should have positive magnitude", p)
			}
		}

		for _, a := range []float64{float64(i + 1), -float64(i + 1)} {
			for _, p := range []Vector{p0, p1, p2} {
				exp := p.Magnitude() * math.Abs(a)
				if m := mul(t, p, a).Magnitude(); !closeEnough(m, exp) {
					t.Fatalf("‖aP‖ should equal |a|*‖P‖, got %v and %v", m, exp)
				}
			}
		}

		for _, p := range []Vector{p0, p1, p2} {
			for _, q := range []Vector{q1, q2} {
				lhs := p.Add(q, nil).Magnitude()
				rhs := p.Magnitude() + q.Magnitude()
				if lhs > rhs*(1+1e-15) {
					t.Fatalf("‖P+Q‖ <= ‖P‖+‖Q‖ failed for %v %v", p, q)
				}
			}
		}
	}
}

// Dot product properties.

func TestDotProperties(t *testing.T) {
	var p0, p1, p2, q1, q2 Vector
	for i := 0; i < 4; i++ {
		p0.Push(0)
		p1.Push(maxSafe)
		p2.Push(minSafe)
		q1.Push(i + 1)
		q2.Push(-(i + 1))

		all := []Vector{p0, p1, p2, q1, q2}
		for _, p := range all {
			for _, q := range all {
				if p.Dot(q) != q.Dot(p) {
					t.Fatalf("P⋅Q != Q⋅P for %v %v", p, q)
				}

				a := float64(i)
				if d := mul(t, p, a).Dot(q); !closeEnough(d, a*p.Dot(q)) {
					t.Fatalf("(aP)⋅Q != a(P⋅Q) for %v %v: %v", p, q, d)
				}
			}

			m := p.Magnitude()
			if !closeEnough(p.Dot(p), m*m) {
				t.Fatalf("P⋅P != ‖P‖² for %v", p)
			}
		}
	}

	// dimension mismatch is commutative as well
	if New(1, 2).Dot(New(3, 4, 5)) != New(3, 4, 5).Dot(New(1, 2)) {
		t.FailNow()
	}
}

// Magnitude of very small and very large components.

func TestMagnitudeRange(t *testing.T) {
	tiny := New(1e-200, 0)
	if m := tiny.Magnitude(); m != 1e-200 {
		t.Fatalf("‖%v‖ should be 1e-200, got %v", tiny, m)
	}
	if n := tiny.Normalize(); !n.Equals(New(1, 0)) {
		t.Fatalf("Normalize of %v failed: %v", tiny, n)
	}
	if m := New(math.SmallestNonzeroFloat64).Magnitude(); !(m > 0) {
		t.Fatalf("Non zero vector should have positive magnitude, got %v", m)
	}

	big := New(1e200, 1e200)
	if m := big.Magnitude(); !closeEnough(m, 1e200*math.Sqrt2) {
		t.Fatalf("‖%v‖ failed: %v", big, m)
	}
	for _, p := range []Vector{big, New(math.MaxFloat64, -math.MaxFloat64)} {
		n := p.Normalize()
		if !closeEnough(n.Magnitude(), 1) || !closeEnough(n.X(), math.Abs(n.Y())) {
			t.Fatalf("Normalize of %v failed: %v", p, n)
		}
	}

	p, a := New(3e-200, 4e-200), 1e200
	if m := mul(t, p, a).Magnitude(); !closeEnough(m, 5) || !closeEnough(p.Magnitude()*a, 5) {
		t.Fatalf("‖aP‖ should equal |a|*‖P‖, got %v and %v", m, p.Magnitude()*a)
	}

	inf := New(math.Inf(-1), 1, math.Inf(1))
	if !math.IsInf(inf.Magnitude(), 1) {
		t.Fatalf("Infinite component should give infinite magnitude")
	}
	if n := inf.Normalize(); !closeEnough(n.Magnitude(), 1) || n.Y() != 0 || !(n.X() < 0) {
		t.Fatalf("Normalize of %v failed: %v", inf, n)
	}
}
