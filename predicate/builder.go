package predicate

import (
	"regexp"

	"github.com/lrnxzz/rowpredicate/ast"
	"github.com/lrnxzz/rowpredicate/optimize"
)

// Builder assembles a predicate tree through chained calls and
// produces an optimized, ready-to-evaluate Filter. A zero-value
// Builder (via New) starts equivalent to TRUE; each call narrows it
// by ANDing in one more term. And, Or, and Not combine whole Builders
// for non-trivial boolean shapes.
type Builder struct {
	node *ast.Node
	errs Errors
}

// New starts an empty Builder.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) current() *ast.Node {
	if b.node == nil {
		return ast.TRUE
	}
	return b.node
}

func (b *Builder) and(n *ast.Node) *Builder {
	if b.node == nil {
		b.node = n
	} else {
		b.node = ast.Composite(ast.AND, b.node, n)
	}
	return b
}

// Where ANDs in a Comparison on field.
func (b *Builder) Where(field string, op ast.CmpOp, value string) *Builder {
	b.validateLeaf(field, op, value)
	return b.and(ast.Comparison(field, op, value))
}

// WhereCI ANDs in a case-insensitive Comparison on field.
func (b *Builder) WhereCI(field string, op ast.CmpOp, value string) *Builder {
	b.validateLeaf(field, op, value)
	return b.and(ast.CaseInsensitiveComparison(field, op, value))
}

func (b *Builder) validateLeaf(field string, op ast.CmpOp, value string) {
	if field == "" {
		b.errs.report("field name must not be empty")
	}
	if op == ast.MATCHES {
		if _, err := regexp.Compile(value); err != nil {
			b.errs.report("field %q: invalid MATCHES pattern %q: %s", field, value, err)
		}
	}
}

// Between ANDs in a Between range, inclusive on both ends.
func (b *Builder) Between(field, lower, upper string) *Builder {
	return b.BetweenInclusive(field, lower, upper, true, true)
}

// BetweenInclusive ANDs in a Between range with explicit inclusivity
// on each end.
func (b *Builder) BetweenInclusive(field, lower, upper string, lowerInclusive, upperInclusive bool) *Builder {
	if field == "" {
		b.errs.report("field name must not be empty")
	}
	return b.and(ast.Between(field, lower, upper, lowerInclusive, upperInclusive))
}

// In ANDs in an InList membership test.
func (b *Builder) In(field string, values ...string) *Builder {
	if field == "" {
		b.errs.report("field name must not be empty")
	}
	if len(values) == 0 {
		b.errs.report("field %q: In requires at least one value", field)
	}
	return b.and(ast.InList(field, values))
}

// DateBetween ANDs in an opaque date range evaluated against the
// named formatter (see predicate.RegisterDateFormat).
func (b *Builder) DateBetween(field, start, end, formatterID string) *Builder {
	if field == "" {
		b.errs.report("field name must not be empty")
	}
	if _, ok := dateFormats[formatterID]; !ok {
		b.errs.report("field %q: unknown date formatter %q", field, formatterID)
	}
	return b.and(ast.DateBetween(field, start, end, formatterID))
}

// And combines first with rest under a single AND, merging every
// collected error.
func And(first *Builder, rest ...*Builder) *Builder {
	return combine(ast.AND, first, rest)
}

// Or combines first with rest under a single OR, merging every
// collected error.
func Or(first *Builder, rest ...*Builder) *Builder {
	return combine(ast.OR, first, rest)
}

func combine(op ast.CompositeOp, first *Builder, rest []*Builder) *Builder {
	children := make([]*ast.Node, 0, 1+len(rest))
	out := &Builder{}
	children = append(children, first.current())
	out.errs.messages = append(out.errs.messages, first.errs.messages...)
	for _, b := range rest {
		children = append(children, b.current())
		out.errs.messages = append(out.errs.messages, b.errs.messages...)
	}
	out.node = ast.Composite(op, children...)
	return out
}

// Not negates everything accumulated on b so far.
func Not(b *Builder) *Builder {
	out := &Builder{node: ast.Not(b.current())}
	out.errs.messages = append(out.errs.messages, b.errs.messages...)
	return out
}

// Build runs the optimizer over the assembled tree and returns a
// ready-to-evaluate Filter, or the accumulated Errors if any Where,
// Between, In, or DateBetween call was invalid.
func (b *Builder) Build() (*Filter, error) {
	if b.errs.Len() > 0 {
		return nil, &b.errs
	}
	return &Filter{tree: optimize.Optimize(b.current())}, nil
}
