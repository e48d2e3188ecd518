// Package rangeval implements the numeric interval algebra used to
// fold chains of inequality comparisons on the same field into a
// single Between or Comparison node.
package rangeval

import (
	"fmt"
	"strconv"

	"github.com/lrnxzz/rowpredicate/ast"
)

// Range is a half-open or closed numeric interval. A nil bound means
// unbounded in that direction.
type Range struct {
	Lower          *float64
	LowerInclusive bool
	Upper          *float64
	UpperInclusive bool
}

// Empty is the designated empty range: a degenerate zero-width
// interval with both ends exclusive.
var Empty = Range{Lower: f64ptr(0), LowerInclusive: false, Upper: f64ptr(0), UpperInclusive: false}

func f64ptr(v float64) *float64 { return &v }

// UnsupportedRangeOpError reports that FromComparison was asked to
// convert a non-range, non-equals CmpOp. This is a programmer error:
// callers must only invoke FromComparison on operators for which
// ast.CmpOp.IsRange() is true, or on EQUALS.
type UnsupportedRangeOpError struct {
	Op ast.CmpOp
}

func (e *UnsupportedRangeOpError) Error() string {
	return fmt.Sprintf("rangeval: unsupported range op %s", e.Op)
}

// NumericParseError reports that a comparison's value string did not
// parse as a 64-bit float. Callers handle this by excluding the
// offending comparison from the range fold, never by aborting.
type NumericParseError struct {
	Value string
	Err   error
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("rangeval: %q is not a number: %s", e.Value, e.Err)
}

func (e *NumericParseError) Unwrap() error { return e.Err }

// FromComparison maps a single numeric Comparison to a Range. op must
// be a range operator (GREATER_THAN, LESS_THAN,
// GREATER_THAN_OR_EQUAL, LESS_THAN_OR_EQUAL) or EQUALS.
func FromComparison(op ast.CmpOp, value string) (Range, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Range{}, &NumericParseError{Value: value, Err: err}
	}
	switch op {
	case ast.GREATER_THAN:
		return Range{Lower: &v, LowerInclusive: false}, nil
	case ast.GREATER_THAN_OR_EQUAL:
		return Range{Lower: &v, LowerInclusive: true}, nil
	case ast.LESS_THAN:
		return Range{Upper: &v, UpperInclusive: false}, nil
	case ast.LESS_THAN_OR_EQUAL:
		return Range{Upper: &v, UpperInclusive: true}, nil
	case ast.EQUALS:
		return Range{Lower: &v, LowerInclusive: true, Upper: &v, UpperInclusive: true}, nil
	default:
		return Range{}, &UnsupportedRangeOpError{Op: op}
	}
}

// Intersect returns the tightest range satisfying both a and b.
func Intersect(a, b Range) Range {
	lower, lowerInc := tighterLower(a.Lower, a.LowerInclusive, b.Lower, b.LowerInclusive)
	upper, upperInc := tighterUpper(a.Upper, a.UpperInclusive, b.Upper, b.UpperInclusive)
	r := Range{Lower: lower, LowerInclusive: lowerInc, Upper: upper, UpperInclusive: upperInc}
	if r.IsEmpty() {
		return Empty
	}
	return r
}

// Union returns the loosest range satisfying either a or b.
func Union(a, b Range) Range {
	lower, lowerInc := looserLower(a.Lower, a.LowerInclusive, b.Lower, b.LowerInclusive)
	upper, upperInc := looserUpper(a.Upper, a.UpperInclusive, b.Upper, b.UpperInclusive)
	return Range{Lower: lower, LowerInclusive: lowerInc, Upper: upper, UpperInclusive: upperInc}
}

func tighterLower(a *float64, aInc bool, b *float64, bInc bool) (*float64, bool) {
	if a == nil {
		return b, bInc
	}
	if b == nil {
		return a, aInc
	}
	switch {
	case *a > *b:
		return a, aInc
	case *b > *a:
		return b, bInc
	default:
		return a, aInc && bInc
	}
}

func tighterUpper(a *float64, aInc bool, b *float64, bInc bool) (*float64, bool) {
	if a == nil {
		return b, bInc
	}
	if b == nil {
		return a, aInc
	}
	switch {
	case *a < *b:
		return a, aInc
	case *b < *a:
		return b, bInc
	default:
		return a, aInc && bInc
	}
}

func looserLower(a *float64, aInc bool, b *float64, bInc bool) (*float64, bool) {
	if a == nil || b == nil {
		return nil, true
	}
	switch {
	case *a < *b:
		return a, aInc
	case *b < *a:
		return b, bInc
	default:
		return a, aInc || bInc
	}
}

func looserUpper(a *float64, aInc bool, b *float64, bInc bool) (*float64, bool) {
	if a == nil || b == nil {
		return nil, true
	}
	switch {
	case *a > *b:
		return a, aInc
	case *b > *a:
		return b, bInc
	default:
		return a, aInc || bInc
	}
}

// IsEmpty reports whether r matches no value: both bounds finite and
// lower past upper, or equal bounds with either end exclusive.
func (r Range) IsEmpty() bool {
	if r.Lower == nil || r.Upper == nil {
		return false
	}
	if *r.Lower > *r.Upper {
		return true
	}
	if *r.Lower == *r.Upper && !(r.LowerInclusive && r.UpperInclusive) {
		return true
	}
	return false
}

// ToNode lowers r back into the AST for field.
func ToNode(field string, r Range) *ast.Node {
	switch {
	case r.IsEmpty():
		return ast.FALSE
	case r.Lower == nil && r.Upper == nil:
		return ast.TRUE
	case r.Lower != nil && r.Upper != nil && *r.Lower == *r.Upper && r.LowerInclusive && r.UpperInclusive:
		return ast.Comparison(field, ast.EQUALS, formatFloat(*r.Lower))
	case r.Lower != nil && r.Upper != nil:
		return ast.Between(field, formatFloat(*r.Lower), formatFloat(*r.Upper), r.LowerInclusive, r.UpperInclusive)
	case r.Lower != nil:
		op := ast.GREATER_THAN
		if r.LowerInclusive {
			op = ast.GREATER_THAN_OR_EQUAL
		}
		return ast.Comparison(field, op, formatFloat(*r.Lower))
	default:
		op := ast.LESS_THAN
		if r.UpperInclusive {
			op = ast.LESS_THAN_OR_EQUAL
		}
		return ast.Comparison(field, op, formatFloat(*r.Upper))
	}
}

// formatFloat re-stringifies a float in the canonical form this
// package commits to: always carrying a decimal point ("10.0", not
// "10"), via strconv's shortest round-tripping representation.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}
