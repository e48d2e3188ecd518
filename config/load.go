package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/lrnxzz/rowpredicate/ast"
	"github.com/lrnxzz/rowpredicate/predicate"
)

var cmpOps = map[string]ast.CmpOp{
	"EQUALS":                ast.EQUALS,
	"NOT_EQUALS":            ast.NOT_EQUALS,
	"GREATER_THAN":          ast.GREATER_THAN,
	"LESS_THAN":             ast.LESS_THAN,
	"GREATER_THAN_OR_EQUAL": ast.GREATER_THAN_OR_EQUAL,
	"LESS_THAN_OR_EQUAL":    ast.LESS_THAN_OR_EQUAL,
	"CONTAINS":              ast.CONTAINS,
	"STARTS_WITH":           ast.STARTS_WITH,
	"ENDS_WITH":             ast.ENDS_WITH,
	"MATCHES":               ast.MATCHES,
	"IS_NULL":               ast.IS_NULL,
	"IS_NOT_NULL":           ast.IS_NOT_NULL,
}

// Load parses a filter definition document from r and builds every
// named filter, running each through Builder.Build (and so through
// the optimizer) before returning it.
func Load(r io.Reader) (map[string]*predicate.Filter, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parsing yaml: %w", err)
	}

	result := make(map[string]*predicate.Filter, len(doc.Filters))
	var errs error
	for name, node := range doc.Filters {
		f, err := toBuilder(node).Build()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("filter %q: %w", name, err))
			continue
		}
		result[name] = f
	}
	return result, errs
}

// LoadFile is Load reading from a single path.
func LoadFile(path string) (map[string]*predicate.Filter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadDir loads every *.yaml/*.yml file directly under dir and merges
// their filters by name. Per-file failures are aggregated rather than
// aborting the whole directory.
func LoadDir(dir string) (map[string]*predicate.Filter, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	result := make(map[string]*predicate.Filter)
	var errs error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		filters, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		for k, v := range filters {
			result[k] = v
		}
	}
	return result, errs
}

func toBuilder(n Node) *predicate.Builder {
	switch {
	case n.Field != "":
		return leafBuilder(n)
	case n.Not != nil:
		return predicate.Not(toBuilder(*n.Not))
	default:
		return connectiveBuilder(n)
	}
}

func leafBuilder(n Node) *predicate.Builder {
	b := predicate.New()
	switch {
	case n.Between != nil:
		b.BetweenInclusive(n.Field, n.Between.Lower, n.Between.Upper, !n.Between.LowerExclusive, !n.Between.UpperExclusive)
	case n.DateBetween != nil:
		b.DateBetween(n.Field, n.DateBetween.Start, n.DateBetween.End, n.DateBetween.Formatter)
	case len(n.In) > 0:
		b.In(n.Field, n.In...)
	default:
		op, ok := cmpOps[strings.ToUpper(n.Cmp)]
		if !ok {
			op = ast.EQUALS
		}
		if n.CI {
			b.WhereCI(n.Field, op, n.Value)
		} else {
			b.Where(n.Field, op, n.Value)
		}
	}
	return b
}

func connectiveBuilder(n Node) *predicate.Builder {
	subs := make([]*predicate.Builder, len(n.Terms))
	for i, t := range n.Terms {
		subs[i] = toBuilder(t)
	}
	if len(subs) == 0 {
		return predicate.New()
	}
	if strings.EqualFold(n.Op, "or") {
		return predicate.Or(subs[0], subs[1:]...)
	}
	return predicate.And(subs[0], subs[1:]...)
}
