package predicate

import (
	"fmt"
	"strings"
)

// Errors collects every problem found while assembling a predicate
// with Builder, so a caller chaining several Where calls sees all of
// them at once instead of stopping at the first. Modeled on the
// accumulate-then-report shape of a parser error list: each call that
// can fail reports into the same collector rather than returning
// immediately.
type Errors struct {
	messages []string
}

func (e *Errors) report(format string, args ...any) {
	e.messages = append(e.messages, fmt.Sprintf(format, args...))
}

// Len reports how many problems have been collected.
func (e *Errors) Len() int {
	return len(e.messages)
}

// Error implements the error interface, joining every collected
// problem onto its own line.
func (e *Errors) Error() string {
	return strings.Join(e.messages, "\n")
}
