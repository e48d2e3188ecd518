package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lrnxzz/rowpredicate/ast"
)

var nodeComparer = cmp.Comparer(func(a, b *ast.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
})

func TestConstantSingletons(t *testing.T) {
	if ast.Constant(true) != ast.TRUE {
		t.Error("Constant(true) must be the TRUE singleton")
	}
	if ast.Constant(false) != ast.FALSE {
		t.Error("Constant(false) must be the FALSE singleton")
	}
	if !ast.Constant(true).Equal(ast.TRUE) {
		t.Error("Constant(true) must compare equal to TRUE")
	}
}

func TestNotNoSimplification(t *testing.T) {
	leaf := ast.Comparison("a", ast.EQUALS, "1")
	doubled := ast.Not(ast.Not(leaf))
	if doubled.Kind() != ast.KindNot {
		t.Fatalf("expected KindNot, got %s", doubled.Kind())
	}
	if doubled.Child().Kind() != ast.KindNot {
		t.Fatal("Not constructor must not simplify Not(Not(x))")
	}
}

func TestEqualStructural(t *testing.T) {
	tests := []struct {
		name  string
		a, b  *ast.Node
		equal bool
	}{
		{"same comparison", ast.Comparison("a", ast.EQUALS, "1"), ast.Comparison("a", ast.EQUALS, "1"), true},
		{"different value", ast.Comparison("a", ast.EQUALS, "1"), ast.Comparison("a", ast.EQUALS, "2"), false},
		{"comparison vs ci comparison", ast.Comparison("a", ast.EQUALS, "1"), ast.CaseInsensitiveComparison("a", ast.EQUALS, "1"), false},
		{"between same", ast.Between("n", "1", "2", true, true), ast.Between("n", "1", "2", true, true), true},
		{"between inclusivity differs", ast.Between("n", "1", "2", true, true), ast.Between("n", "1", "2", true, false), false},
		{"inlist order matters", ast.InList("x", []string{"a", "b"}), ast.InList("x", []string{"b", "a"}), false},
		{"composite same order", ast.Composite(ast.AND, ast.Comparison("a", ast.EQUALS, "1")), ast.Composite(ast.AND, ast.Comparison("a", ast.EQUALS, "1")), true},
		{"composite different op", ast.Composite(ast.AND, ast.TRUE), ast.Composite(ast.OR, ast.TRUE), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
			if diff := cmp.Diff(tt.a, tt.b, nodeComparer); (diff == "") != tt.equal {
				t.Errorf("cmp.Diff disagreement: %s", diff)
			}
		})
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := ast.Composite(ast.AND,
		ast.Comparison("x", ast.EQUALS, "1"),
		ast.Not(ast.Comparison("y", ast.CONTAINS, "z")),
	)
	b := ast.Composite(ast.AND,
		ast.Comparison("x", ast.EQUALS, "1"),
		ast.Not(ast.Comparison("y", ast.CONTAINS, "z")),
	)
	if !a.Equal(b) {
		t.Fatal("expected a and b to be structurally equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal nodes must hash equal")
	}
}

func TestInListCopiesInput(t *testing.T) {
	values := []string{"a", "b"}
	n := ast.InList("x", values)
	values[0] = "mutated"
	if n.Values()[0] != "a" {
		t.Error("InList must copy its input slice")
	}
}
