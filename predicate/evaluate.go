package predicate

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lrnxzz/rowpredicate/ast"
	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// dateFormats maps a DateBetween formatter id to the time.Parse
// layout it names. Additional formats can be registered with
// RegisterDateFormat.
var dateFormats = map[string]string{
	"iso8601":  "2006-01-02",
	"us-slash": "01/02/2006",
	"rfc3339":  time.RFC3339,
}

// RegisterDateFormat adds or overrides a named date formatter usable
// by Builder.DateBetween and DateBetween evaluation.
func RegisterDateFormat(id, layout string) {
	dateFormats[id] = layout
}

var regexCache sync.Map // pattern string -> *regexp.Regexp

func compileCached(pattern string) (*regexp.Regexp, error) {
	if v, ok := regexCache.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	actual, _ := regexCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

func evaluate(n *ast.Node, row Row) bool {
	switch n.Kind() {
	case ast.KindConstant:
		return n.AsBool()
	case ast.KindNot:
		return !evaluate(n.Child(), row)
	case ast.KindComposite:
		if n.CompositeOp() == ast.AND {
			for _, c := range n.Children() {
				if !evaluate(c, row) {
					return false
				}
			}
			return true
		}
		for _, c := range n.Children() {
			if evaluate(c, row) {
				return true
			}
		}
		return false
	case ast.KindComparison:
		return evalComparison(n.Field(), n.Op(), n.Value(), row, false)
	case ast.KindCaseInsensitiveComparison:
		return evalComparison(n.Field(), n.Op(), n.Value(), row, true)
	case ast.KindBetween:
		return evalBetween(n, row)
	case ast.KindInList:
		actual, ok := row[n.Field()]
		if !ok {
			return false
		}
		for _, v := range n.Values() {
			if v == actual {
				return true
			}
		}
		return false
	case ast.KindDateBetween:
		return evalDateBetween(n, row)
	default:
		return false
	}
}

func evalComparison(field string, op ast.CmpOp, value string, row Row, ci bool) bool {
	if op == ast.IS_NULL {
		_, ok := row[field]
		return !ok
	}
	if op == ast.IS_NOT_NULL {
		_, ok := row[field]
		return ok
	}
	actual, ok := row[field]
	if !ok {
		return false
	}
	if ci {
		actual = foldCaser.String(actual)
		value = foldCaser.String(value)
	}
	switch op {
	case ast.EQUALS:
		return actual == value
	case ast.NOT_EQUALS:
		return actual != value
	case ast.CONTAINS:
		return strings.Contains(actual, value)
	case ast.STARTS_WITH:
		return strings.HasPrefix(actual, value)
	case ast.ENDS_WITH:
		return strings.HasSuffix(actual, value)
	case ast.MATCHES:
		re, err := compileCached(value)
		if err != nil {
			return false
		}
		return re.MatchString(actual)
	case ast.GREATER_THAN, ast.LESS_THAN, ast.GREATER_THAN_OR_EQUAL, ast.LESS_THAN_OR_EQUAL:
		return evalRangeOp(op, actual, value)
	default:
		return false
	}
}

func evalRangeOp(op ast.CmpOp, actual, value string) bool {
	af, aerr := strconv.ParseFloat(actual, 64)
	vf, verr := strconv.ParseFloat(value, 64)
	if aerr == nil && verr == nil {
		switch op {
		case ast.GREATER_THAN:
			return af > vf
		case ast.LESS_THAN:
			return af < vf
		case ast.GREATER_THAN_OR_EQUAL:
			return af >= vf
		default:
			return af <= vf
		}
	}
	switch op {
	case ast.GREATER_THAN:
		return actual > value
	case ast.LESS_THAN:
		return actual < value
	case ast.GREATER_THAN_OR_EQUAL:
		return actual >= value
	default:
		return actual <= value
	}
}

func evalBetween(n *ast.Node, row Row) bool {
	actual, ok := row[n.Field()]
	if !ok {
		return false
	}
	af, err := strconv.ParseFloat(actual, 64)
	if err != nil {
		return false
	}
	lf, lerr := strconv.ParseFloat(n.Lower(), 64)
	uf, uerr := strconv.ParseFloat(n.Upper(), 64)
	if lerr != nil || uerr != nil {
		return false
	}
	if n.LowerInclusive() {
		if af < lf {
			return false
		}
	} else if af <= lf {
		return false
	}
	if n.UpperInclusive() {
		if af > uf {
			return false
		}
	} else if af >= uf {
		return false
	}
	return true
}

func evalDateBetween(n *ast.Node, row Row) bool {
	actual, ok := row[n.Field()]
	if !ok {
		return false
	}
	layout, ok := dateFormats[n.Formatter()]
	if !ok {
		return false
	}
	t, err := time.Parse(layout, actual)
	if err != nil {
		return false
	}
	start, serr := time.Parse(layout, n.Lower())
	end, eerr := time.Parse(layout, n.Upper())
	if serr != nil || eerr != nil {
		return false
	}
	return !t.Before(start) && !t.After(end)
}
