package ast

// Equal reports whether n and other are structurally equal: same
// variant, same field values, recursively equal children. Identity
// comparison (pointer equality) is never sufficient since passes
// freely allocate fresh nodes for unchanged subtrees.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindConstant:
		return n.boolVal == other.boolVal
	case KindComparison, KindCaseInsensitiveComparison:
		return n.field == other.field && n.op == other.op && n.value == other.value
	case KindBetween:
		return n.field == other.field &&
			n.lower == other.lower && n.upper == other.upper &&
			n.lowerInclusive == other.lowerInclusive && n.upperInclusive == other.upperInclusive
	case KindInList:
		if n.field != other.field || len(n.values) != len(other.values) {
			return false
		}
		for i := range n.values {
			if n.values[i] != other.values[i] {
				return false
			}
		}
		return true
	case KindDateBetween:
		return n.field == other.field && n.lower == other.lower &&
			n.upper == other.upper && n.formatter == other.formatter
	case KindNot:
		return n.child.Equal(other.child)
	case KindComposite:
		if n.compositeOp != other.compositeOp || len(n.children) != len(other.children) {
			return false
		}
		for i := range n.children {
			if !n.children[i].Equal(other.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
