package optimize

import (
	"sort"

	"github.com/lrnxzz/rowpredicate/ast"
)

// costReorder implements P8, the final pass: a stable sort of each
// Composite's children by non-decreasing EstimateCost. Stability
// preserves the relative order of equal-cost children, which is what
// makes the pipeline's output reproducible.
type costReorder struct{}

func (costReorder) Optimize(n *ast.Node) *ast.Node {
	return reorder(n)
}

func reorder(n *ast.Node) *ast.Node {
	switch n.Kind() {
	case ast.KindNot:
		return ast.Not(reorder(n.Child()))
	case ast.KindComposite:
		children := make([]*ast.Node, len(n.Children()))
		for i, c := range n.Children() {
			children[i] = reorder(c)
		}
		sort.SliceStable(children, func(i, j int) bool {
			return EstimateCost(children[i]) < EstimateCost(children[j])
		})
		return ast.Composite(n.CompositeOp(), children...)
	default:
		return n
	}
}
