package rangeval_test

import (
	"testing"

	"github.com/lrnxzz/rowpredicate/ast"
	"github.com/lrnxzz/rowpredicate/rangeval"
)

func mustRange(t *testing.T, op ast.CmpOp, value string) rangeval.Range {
	t.Helper()
	r, err := rangeval.FromComparison(op, value)
	if err != nil {
		t.Fatalf("FromComparison(%s, %q): %v", op, value, err)
	}
	return r
}

func TestFromComparisonUnsupportedOp(t *testing.T) {
	_, err := rangeval.FromComparison(ast.CONTAINS, "1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*rangeval.UnsupportedRangeOpError); !ok {
		t.Fatalf("expected UnsupportedRangeOpError, got %T: %v", err, err)
	}
}

func TestFromComparisonParseFailure(t *testing.T) {
	_, err := rangeval.FromComparison(ast.GREATER_THAN, "not-a-number")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if _, ok := err.(*rangeval.NumericParseError); !ok {
		t.Fatalf("expected NumericParseError, got %T", err)
	}
}

func TestIntersect(t *testing.T) {
	ge10 := mustRange(t, ast.GREATER_THAN_OR_EQUAL, "10")
	lt20 := mustRange(t, ast.LESS_THAN, "20")
	le15 := mustRange(t, ast.LESS_THAN_OR_EQUAL, "15")

	r := rangeval.Intersect(rangeval.Intersect(ge10, lt20), le15)
	if r.IsEmpty() {
		t.Fatal("expected non-empty range")
	}
	if *r.Lower != 10 || !r.LowerInclusive {
		t.Errorf("lower = %v inclusive=%v, want 10 inclusive", *r.Lower, r.LowerInclusive)
	}
	if *r.Upper != 15 || !r.UpperInclusive {
		t.Errorf("upper = %v inclusive=%v, want 15 inclusive", *r.Upper, r.UpperInclusive)
	}
}

func TestIntersectEmpty(t *testing.T) {
	gt10 := mustRange(t, ast.GREATER_THAN, "10")
	lt5 := mustRange(t, ast.LESS_THAN, "5")
	if !rangeval.Intersect(gt10, lt5).IsEmpty() {
		t.Error("expected empty range")
	}
}

func TestIntersectEqualBoundsExclusiveIsEmpty(t *testing.T) {
	lt10 := mustRange(t, ast.LESS_THAN, "10")
	ge10 := mustRange(t, ast.GREATER_THAN_OR_EQUAL, "10")
	if !rangeval.Intersect(lt10, ge10).IsEmpty() {
		t.Error("[x < 10] AND [x >= 10] must be empty")
	}
}

func TestUnionFullyUnboundedLowersToTrue(t *testing.T) {
	lt5 := mustRange(t, ast.LESS_THAN, "5")
	ge5 := mustRange(t, ast.GREATER_THAN_OR_EQUAL, "5")
	u := rangeval.Union(lt5, ge5)
	if u.Lower != nil || u.Upper != nil {
		t.Fatalf("expected fully unbounded union, got %+v", u)
	}
	if rangeval.ToNode("x", u) != ast.TRUE {
		t.Error("fully unbounded range must lower to TRUE")
	}
}

func TestToNodeEquality(t *testing.T) {
	eq := mustRange(t, ast.EQUALS, "7")
	n := rangeval.ToNode("n", eq)
	if n.Kind() != ast.KindComparison || n.Op() != ast.EQUALS || n.Value() != "7.0" {
		t.Errorf("got %v %v %v", n.Kind(), n.Op(), n.Value())
	}
}

func TestToNodeEmpty(t *testing.T) {
	if rangeval.ToNode("n", rangeval.Empty) != ast.FALSE {
		t.Error("empty range must lower to FALSE")
	}
}

func TestToNodeOneSided(t *testing.T) {
	ge10 := mustRange(t, ast.GREATER_THAN_OR_EQUAL, "10")
	n := rangeval.ToNode("n", ge10)
	if n.Kind() != ast.KindComparison || n.Op() != ast.GREATER_THAN_OR_EQUAL || n.Value() != "10.0" {
		t.Errorf("got %v %v %v", n.Kind(), n.Op(), n.Value())
	}
}
