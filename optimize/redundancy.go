package optimize

import "github.com/lrnxzz/rowpredicate/ast"

// redundancyElimination implements P3: within one Composite, collapse
// structurally duplicate children to one, and collapse the whole
// Composite to the annihilator when some child x and Not(x) both
// appear. Recurses bottom-up so the predicate always sees
// already-simplified children. Complementary detection is purely
// structural; it never reasons across nested connectives.
type redundancyElimination struct{}

func (redundancyElimination) Optimize(n *ast.Node) *ast.Node {
	return dedupe(n)
}

func dedupe(n *ast.Node) *ast.Node {
	switch n.Kind() {
	case ast.KindNot:
		return ast.Not(dedupe(n.Child()))
	case ast.KindComposite:
		op := n.CompositeOp()
		children := make([]*ast.Node, len(n.Children()))
		for i, c := range n.Children() {
			children[i] = dedupe(c)
		}

		var nonNegated, negatedInner []*ast.Node
		appendUnique := func(bucket *[]*ast.Node, x *ast.Node) {
			for _, e := range *bucket {
				if e.Equal(x) {
					return
				}
			}
			*bucket = append(*bucket, x)
		}
		for _, c := range children {
			if c.Kind() == ast.KindNot {
				appendUnique(&negatedInner, c.Child())
			} else {
				appendUnique(&nonNegated, c)
			}
		}

		for _, x := range nonNegated {
			for _, y := range negatedInner {
				if x.Equal(y) {
					return ast.Constant(op == ast.OR)
				}
			}
		}

		rebuilt := make([]*ast.Node, 0, len(nonNegated)+len(negatedInner))
		rebuilt = append(rebuilt, nonNegated...)
		for _, y := range negatedInner {
			rebuilt = append(rebuilt, ast.Not(y))
		}
		if len(rebuilt) == 1 {
			return rebuilt[0]
		}
		return ast.Composite(op, rebuilt...)
	default:
		return n
	}
}
