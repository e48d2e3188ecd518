package optimize

import (
	"github.com/lrnxzz/rowpredicate/ast"
	"github.com/lrnxzz/rowpredicate/rangeval"
)

// fieldCoalescing implements P4: within one Composite, group
// Comparison children by field and merge each multi-member group:
// equalities first, then ranges, with everything else passed through.
// Non-Comparison children (Between, InList, DateBetween,
// CaseInsensitiveComparison, Not, nested Composite) are never
// coalesced and pass through after recursion.
type fieldCoalescing struct{}

func (fieldCoalescing) Optimize(n *ast.Node) *ast.Node {
	return coalesceTree(n)
}

func coalesceTree(n *ast.Node) *ast.Node {
	switch n.Kind() {
	case ast.KindNot:
		return ast.Not(coalesceTree(n.Child()))
	case ast.KindComposite:
		children := make([]*ast.Node, len(n.Children()))
		for i, c := range n.Children() {
			children[i] = coalesceTree(c)
		}
		return coalesceChildren(n.CompositeOp(), children)
	default:
		return n
	}
}

// coalesceChildren groups children (already recursed) by field and
// merges each field's Comparison group, preserving the first-seen
// position of each field and the original position of anything not
// grouped.
func coalesceChildren(op ast.CompositeOp, children []*ast.Node) *ast.Node {
	groups := make(map[string][]*ast.Node)
	for _, c := range children {
		if c.Kind() == ast.KindComparison {
			groups[c.Field()] = append(groups[c.Field()], c)
		}
	}

	result := make([]*ast.Node, 0, len(children))
	emitted := make(map[string]bool)
	for _, c := range children {
		if c.Kind() != ast.KindComparison {
			result = append(result, c)
			continue
		}
		group := groups[c.Field()]
		if len(group) == 1 {
			result = append(result, c)
			continue
		}
		if emitted[c.Field()] {
			continue
		}
		emitted[c.Field()] = true
		contributions, shortCircuit := coalesceField(op, c.Field(), group)
		if shortCircuit != nil {
			return shortCircuit
		}
		result = append(result, contributions...)
	}

	// A recursed-into child (e.g. a nested Composite whose own field
	// group was contradictory or tautological) may have come back as a
	// bare Constant. Collapse those the same way fold does: annihilator
	// short-circuits the whole Composite, identity drops out.
	kept := make([]*ast.Node, 0, len(result))
	for _, c := range result {
		if c.Kind() == ast.KindConstant {
			if (op == ast.AND && !c.AsBool()) || (op == ast.OR && c.AsBool()) {
				return c
			}
			continue
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
}

// coalesceField merges one field's group of Comparison nodes under
// connective op, returning either the replacement sibling nodes or a
// shortCircuit constant that supersedes the entire enclosing
// Composite (a contradiction under AND, a tautology under OR).
func coalesceField(op ast.CompositeOp, field string, group []*ast.Node) (contributions []*ast.Node, shortCircuit *ast.Node) {
	var equalities, rest []*ast.Node
	for _, c := range group {
		if c.Op() == ast.EQUALS {
			equalities = append(equalities, c)
		} else {
			rest = append(rest, c)
		}
	}

	var eqNode *ast.Node
	discardRanges := false
	if len(equalities) > 0 {
		if op == ast.AND {
			allSame := true
			for _, e := range equalities[1:] {
				if e.Value() != equalities[0].Value() {
					allSame = false
					break
				}
			}
			if !allSame {
				return nil, ast.FALSE
			}
			eqNode = ast.Comparison(field, ast.EQUALS, equalities[0].Value())
		} else {
			var values []string
			seen := make(map[string]bool)
			for _, e := range equalities {
				if !seen[e.Value()] {
					seen[e.Value()] = true
					values = append(values, e.Value())
				}
			}
			eqNode = ast.InList(field, values)
			// Once equalities are present on a field under OR, range
			// comparisons on that same field are discarded: only the
			// InList and the non-range comparisons remain, so a row that
			// satisfies only a discarded bound no longer matches.
			discardRanges = true
		}
	}

	var rangeComps, others []*ast.Node
	for _, c := range rest {
		if c.Op().IsRange() {
			rangeComps = append(rangeComps, c)
		} else {
			others = append(others, c)
		}
	}

	var rangeNode *ast.Node
	if len(rangeComps) > 0 && !discardRanges {
		var acc *rangeval.Range
		for _, c := range rangeComps {
			r, err := rangeval.FromComparison(c.Op(), c.Value())
			if err != nil {
				// Unparsable bound: leave the comparison as an opaque leaf
				// rather than fail the optimization.
				others = append(others, c)
				continue
			}
			switch {
			case acc == nil:
				v := r
				acc = &v
			case op == ast.AND:
				v := rangeval.Intersect(*acc, r)
				acc = &v
			default:
				v := rangeval.Union(*acc, r)
				acc = &v
			}
		}
		if acc != nil {
			if op == ast.AND && acc.IsEmpty() {
				return nil, ast.FALSE
			}
			rangeNode = rangeval.ToNode(field, *acc)
			if op == ast.OR && rangeNode.Equal(ast.TRUE) {
				return nil, ast.TRUE
			}
		}
	}

	out := make([]*ast.Node, 0, 2+len(others))
	if eqNode != nil {
		out = append(out, eqNode)
	}
	if rangeNode != nil {
		out = append(out, rangeNode)
	}
	out = append(out, others...)
	return out, nil
}
