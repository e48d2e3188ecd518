// Package config loads named, reusable predicates from YAML
// documents, so a filter can be described declaratively rather than
// always assembled through the Go builder API directly.
package config

// Document is the top-level shape of a filter definition file: a map
// of filter name to its predicate tree.
type Document struct {
	Filters map[string]Node `yaml:"filters"`
}

// Node is one node of the YAML predicate tree. Exactly one of the
// following shapes should be populated: a connective (Op + Terms), a
// negation (Not), or a leaf (Field plus one of Cmp/In/Between/DateBetween).
type Node struct {
	// Connective
	Op    string `yaml:"op,omitempty"`
	Terms []Node `yaml:"terms,omitempty"`

	// Negation
	Not *Node `yaml:"not,omitempty"`

	// Leaf
	Field       string       `yaml:"field,omitempty"`
	Cmp         string       `yaml:"cmp,omitempty"`
	CI          bool         `yaml:"ci,omitempty"`
	Value       string       `yaml:"value,omitempty"`
	In          []string     `yaml:"in,omitempty"`
	Between     *Between     `yaml:"between,omitempty"`
	DateBetween *DateBetween `yaml:"date_between,omitempty"`
}

// Between is the YAML shape of a range leaf. Bounds are inclusive
// unless the matching Exclusive flag is set.
type Between struct {
	Lower          string `yaml:"lower"`
	Upper          string `yaml:"upper"`
	LowerExclusive bool   `yaml:"lower_exclusive"`
	UpperExclusive bool   `yaml:"upper_exclusive"`
}

// DateBetween is the YAML shape of a date range leaf.
type DateBetween struct {
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
	Formatter string `yaml:"formatter"`
}
