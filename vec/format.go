package vec

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// String renders v as <x,y,z,...>. Not meant to be parsed back.
func (v Vector) String() string {
	return v.Format(-1)
}

// Format renders v like String, with each component formatted
// by FormatScalar.
func (v Vector) Format(prec int) string {
	b := strings.Builder{}
	b.WriteByte('<')
	for i, x := range v {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteString(FormatScalar(x, prec))
	}
	b.WriteByte('>')
	return b.String()
}

// FormatScalar renders x rounded to prec decimal places, without
// trailing zeros. A negative prec gives the shortest form that reads
// back as x, in plain notation between 1e-6 and 1e21 and as 1.5e-7
// or 1e+21 outside that.
func FormatScalar(x float64, prec int) string {
	switch {
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case math.IsNaN(x):
		return "NaN"
	case x == 0:
		return "0"
	case prec >= 0:
		return decimal.NewFromFloat(x).Round(int32(prec)).String()
	}
	if a := math.Abs(x); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	i := strings.IndexByte(s, 'e') + 2
	return s[:i] + strings.TrimLeft(s[i:], "0")
}
