package vec

// Step tells ForEvery whether to keep going.
type Step bool

const (
	Continue Step = false
	Stop     Step = true
)

// PairIter walks two vectors index by index up to the longer
// dimension, substituting 0 for components missing on either side.
type PairIter struct {
	left, right Vector
	i, n        int
}

// Pairs starts a pairwise iteration over left and right.
//
//	it := Pairs(a, b)
//	for it.Next() {
//		l, r, i := it.Pair()
//		...
//	}
func Pairs(left, right Vector) *PairIter {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	return &PairIter{left: left, right: right, i: -1, n: n}
}

// Next advances the iterator, returning false when done.
func (it *PairIter) Next() bool {
	if it.i >= it.n {
		return false
	}
	it.i++
	return it.i < it.n
}

// Pair returns the current left and right values and their index.
func (it *PairIter) Pair() (l, r float64, i int) {
	return it.left.At(it.i), it.right.At(it.i), it.i
}

// Len is the number of pairs the iterator visits in total.
func (it *PairIter) Len() int {
	return it.n
}

// ForEvery calls f for each pair of left and right, stopping early
// once f returns Stop.
func ForEvery(left, right Vector, f func(l, r float64, i int) Step) {
	for it := Pairs(left, right); it.Next(); {
		if f(it.Pair()) == Stop {
			return
		}
	}
}
