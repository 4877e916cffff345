package ir

import (
	"math"
	"strconv"
	"strings"
)

// Text returns the canonical text of a scalar: decimal numbers, "true" or
// "false", or the string itself. ok is false for non-scalars.
func Text(y *Node) (s string, ok bool) {
	if Classify(y) != KindScalar {
		return "", false
	}
	switch y.Type {
	case StringType:
		return y.String, true
	case BoolType:
		return strconv.FormatBool(y.Bool), true
	}
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10), true
	case y.Float64 != nil:
		return FormatFloat(*y.Float64), true
	}
	return y.Number, true
}

// FormatFloat writes f the way ECMAScript's Number#toString does: the
// shortest text that round-trips, plain decimal for magnitudes in
// [1e-6, 1e21) and exponent notation outside it.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}
