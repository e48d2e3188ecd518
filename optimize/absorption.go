package optimize

import "github.com/lrnxzz/rowpredicate/ast"

// absorptionRewrite implements P6: A AND (A OR B) -> A. Applied
// bottom-up, after recursion. Only this AND/OR direction is
// implemented; the dual OR(A, AND(A, B)) -> A is not applied.
type absorptionRewrite struct{}

func (absorptionRewrite) Optimize(n *ast.Node) *ast.Node {
	return absorb(n)
}

func absorb(n *ast.Node) *ast.Node {
	switch n.Kind() {
	case ast.KindNot:
		return ast.Not(absorb(n.Child()))
	case ast.KindComposite:
		children := make([]*ast.Node, len(n.Children()))
		for i, c := range n.Children() {
			children[i] = absorb(c)
		}
		if n.CompositeOp() == ast.AND {
			for i, candidate := range children {
				if candidate.Kind() != ast.KindComposite || candidate.CompositeOp() != ast.OR {
					continue
				}
				for _, inner := range candidate.Children() {
					for j, outer := range children {
						if j == i {
							continue
						}
						if inner.Equal(outer) {
							return outer
						}
					}
				}
			}
		}
		return ast.Composite(n.CompositeOp(), children...)
	default:
		return n
	}
}
