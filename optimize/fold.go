package optimize

import "github.com/lrnxzz/rowpredicate/ast"

// constantFolding implements P2: drop identity constants from a
// Composite's children, collapse to the annihilator when one is
// present, and fold Not(Constant(b)).
type constantFolding struct{}

func (constantFolding) Optimize(n *ast.Node) *ast.Node {
	return fold(n)
}

func fold(n *ast.Node) *ast.Node {
	switch n.Kind() {
	case ast.KindNot:
		child := fold(n.Child())
		if child.Kind() == ast.KindConstant {
			return ast.Constant(!child.AsBool())
		}
		return ast.Not(child)
	case ast.KindComposite:
		op := n.CompositeOp()
		kept := make([]*ast.Node, 0, len(n.Children()))
		for _, child := range n.Children() {
			c := fold(child)
			if c.Kind() == ast.KindConstant {
				if (op == ast.AND && !c.AsBool()) || (op == ast.OR && c.AsBool()) {
					return c // annihilator
				}
				continue // identity: drop
			}
			kept = append(kept, c)
		}
		switch len(kept) {
		case 0:
			return ast.Constant(op == ast.AND)
		case 1:
			return kept[0]
		default:
			return ast.Composite(op, kept...)
		}
	default:
		return n
	}
}
