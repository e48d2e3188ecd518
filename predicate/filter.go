package predicate

import (
	"github.com/lrnxzz/rowpredicate/ast"
	"github.com/lrnxzz/rowpredicate/optimize"
)

// Filter wraps an already-optimized predicate tree ready for
// evaluation against rows. Construct one through Builder.Build.
type Filter struct {
	tree *ast.Node
}

// Matches reports whether row satisfies the predicate.
func (f *Filter) Matches(row Row) bool {
	return evaluate(f.tree, row)
}

// Select returns the subset of rows that satisfy the predicate,
// preserving input order.
func (f *Filter) Select(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// EstimatedCost returns the optimizer's cost heuristic for the
// optimized tree backing this filter, useful for logging or choosing
// between several equivalent filters.
func (f *Filter) EstimatedCost() int {
	return optimize.EstimateCost(f.tree)
}

// Tree exposes the optimized AST for callers that need to inspect or
// unparse it (e.g. a CLI printing the plan it will evaluate).
func (f *Filter) Tree() *ast.Node {
	return f.tree
}
