// Package predicate is the fluent surface for building and
// evaluating row predicates: the builder and evaluator the optimizer
// core (package optimize) treats as external collaborators.
package predicate

// Row is a tabular row: a mapping from field name to its string cell
// value. A missing key means the field is absent from the row, which
// IS_NULL/IS_NOT_NULL and every other comparison treat as "no match"
// except IS_NULL itself.
type Row map[string]string
