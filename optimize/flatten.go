package optimize

import "github.com/lrnxzz/rowpredicate/ast"

// flattenPass implements P7: associative flattening of same-operator
// nesting. Recurses first so that flattening propagates outward
// through several levels of nesting in one traversal. Not does not
// associate, so its child is recursed into but never flattened.
type flattenPass struct{}

func (flattenPass) Optimize(n *ast.Node) *ast.Node {
	return flatten(n)
}

func flatten(n *ast.Node) *ast.Node {
	switch n.Kind() {
	case ast.KindNot:
		return ast.Not(flatten(n.Child()))
	case ast.KindComposite:
		op := n.CompositeOp()
		flat := make([]*ast.Node, 0, len(n.Children()))
		for _, child := range n.Children() {
			c := flatten(child)
			if c.Kind() == ast.KindComposite && c.CompositeOp() == op {
				flat = append(flat, c.Children()...)
			} else {
				flat = append(flat, c)
			}
		}
		if len(flat) == 1 {
			return flat[0]
		}
		return ast.Composite(op, flat...)
	default:
		return n
	}
}
