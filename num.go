package shapes

import (
	"math"
	"strconv"
)

// Num is an optional numeric shape parameter.
//
// The zero value is unset. A Num built with Float is set, and an explicit
// zero is kept distinct from an unset field:
//
//	shapes.TriangleOptions{Size: shapes.Float(0)} // size resolves to 0
//	shapes.TriangleOptions{}                      // size resolves to 50
type Num struct {
	v   float64
	set bool
}

// Float returns a set Num holding v.
func Float(v float64) Num {
	return Num{v: v, set: true}
}

// Unset returns an unset Num. It is equivalent to Num{}.
func Unset() Num {
	return Num{}
}

// IsSet reports whether the value was supplied.
func (n Num) IsSet() bool {
	return n.set
}

// Value returns the stored value and whether it was set.
func (n Num) Value() (float64, bool) {
	return n.v, n.set
}

// Or resolves n against base.
//
// An explicit zero always wins. Any other usable value wins. An unset
// value or NaN falls back to base.
func (n Num) Or(base float64) float64 {
	switch {
	case !n.set:
		return base
	case n.v == 0:
		return 0
	case math.IsNaN(n.v):
		return base
	default:
		return n.v
	}
}

// String implements fmt.Stringer.
func (n Num) String() string {
	if !n.set {
		return "unset"
	}
	return strconv.FormatFloat(n.v, 'g', -1, 64)
}

// orString resolves a string field: a non-empty override wins.
func orString(override, base string) string {
	if override != "" {
		return override
	}
	return base
}
