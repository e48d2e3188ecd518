// Package optimize is the predicate-expression optimizer: a
// fixed-order pipeline of pure, total tree-to-tree rewrites that
// produce a smaller, equivalent, cheaper-to-evaluate ast.Node.
package optimize

import "github.com/lrnxzz/rowpredicate/ast"

// ASTOptimizer applies one rewrite pass over a tree and returns the
// result. Every implementation must be pure and total: no input tree
// causes it to fail or to leave the tree unchanged except where no
// rewrite applies.
type ASTOptimizer interface {
	Optimize(n *ast.Node) *ast.Node
}

// StaticOptimizer runs a fixed sequence of ASTOptimizer passes in
// order, threading the result of each pass into the next. There is no
// fixed-point loop: each pass runs exactly once.
type StaticOptimizer struct {
	passes []ASTOptimizer
}

// NewStaticOptimizer builds a StaticOptimizer running passes in the
// given order.
func NewStaticOptimizer(passes ...ASTOptimizer) *StaticOptimizer {
	return &StaticOptimizer{passes: passes}
}

// Optimize threads n through every configured pass in order.
func (o *StaticOptimizer) Optimize(n *ast.Node) *ast.Node {
	for _, pass := range o.passes {
		n = pass.Optimize(n)
	}
	return n
}

// defaultPipeline is the fixed P1-through-P8 sequence: algebraic
// simplification, constant folding, redundancy elimination, per-field
// coalescing, the range identity hook, absorption, flattening, and
// cost-based reordering.
var defaultPipeline = NewStaticOptimizer(
	algebraicSimplification{},
	constantFolding{},
	redundancyElimination{},
	fieldCoalescing{},
	rangeIdentity{},
	absorptionRewrite{},
	flattenPass{},
	costReorder{},
)

// Optimize is the optimizer's sole transformation entry point: total,
// pure, and terminating for any well-formed input tree.
func Optimize(n *ast.Node) *ast.Node {
	return defaultPipeline.Optimize(n)
}
