package optimize

import "github.com/lrnxzz/rowpredicate/ast"

// rangeIdentity implements P5. Range merging is the responsibility of
// P4's coalescer; this pass is an identity hook reserved for future
// extension and must preserve the tree exactly.
type rangeIdentity struct{}

func (rangeIdentity) Optimize(n *ast.Node) *ast.Node {
	return n
}
