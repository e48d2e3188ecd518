package optimize

import "github.com/lrnxzz/rowpredicate/ast"

// EstimateCost returns the integer cost heuristic for n, used by P8 to
// reorder a Composite's children cheapest-first: equality comparisons
// are cheapest, then range comparisons, then substring/prefix/suffix
// tests, then regular expressions. AND costs the max of its children
// (it short-circuits on the first false); OR costs the sum (it may
// have to touch all of them). Constant, Between, InList, DateBetween,
// and CaseInsensitiveComparison all default to 1.
func EstimateCost(n *ast.Node) int {
	switch n.Kind() {
	case ast.KindComparison:
		return comparisonCost(n.Op())
	case ast.KindComposite:
		children := n.Children()
		if n.CompositeOp() == ast.AND {
			max := 0
			for _, c := range children {
				if c := EstimateCost(c); c > max {
					max = c
				}
			}
			return max
		}
		sum := 0
		for _, c := range children {
			sum += EstimateCost(c)
		}
		return sum
	case ast.KindNot:
		return EstimateCost(n.Child())
	default:
		return 1
	}
}

func comparisonCost(op ast.CmpOp) int {
	switch op {
	case ast.EQUALS, ast.NOT_EQUALS:
		return 1
	case ast.GREATER_THAN, ast.LESS_THAN, ast.GREATER_THAN_OR_EQUAL, ast.LESS_THAN_OR_EQUAL:
		return 2
	case ast.CONTAINS, ast.STARTS_WITH, ast.ENDS_WITH:
		return 5
	case ast.MATCHES:
		return 10
	default:
		return 3
	}
}
