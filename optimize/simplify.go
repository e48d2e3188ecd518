package optimize

import "github.com/lrnxzz/rowpredicate/ast"

// algebraicSimplification implements P1: double-negation elimination
// and De Morgan pushdown. Negation is never pushed through a leaf
// comparison; Not over a leaf is left alone.
type algebraicSimplification struct{}

func (algebraicSimplification) Optimize(n *ast.Node) *ast.Node {
	return simplify(n)
}

func simplify(n *ast.Node) *ast.Node {
	switch n.Kind() {
	case ast.KindNot:
		child := simplify(n.Child())
		switch child.Kind() {
		case ast.KindNot:
			return simplify(child.Child())
		case ast.KindComposite:
			negated := make([]*ast.Node, len(child.Children()))
			for i, c := range child.Children() {
				negated[i] = simplify(ast.Not(c))
			}
			if child.CompositeOp() == ast.AND {
				return ast.Composite(ast.OR, negated...)
			}
			return ast.Composite(ast.AND, negated...)
		default:
			return ast.Not(child)
		}
	case ast.KindComposite:
		children := make([]*ast.Node, len(n.Children()))
		for i, c := range n.Children() {
			children[i] = simplify(c)
		}
		return ast.Composite(n.CompositeOp(), children...)
	default:
		return n
	}
}
