package ddmin

import (
	"fmt"
	"strings"
)

// ConfigID identifies where in the search a particular test came from: a
// tuple of short tokens such as ("r3", "s1") for "run 3, subset 1". It is
// formatted for logs and for any test-artifact directory names the oracle
// derives from it by joining tokens with " / ". The oracle must never let
// a ConfigID influence its verdict.
type ConfigID []string

// String joins the id's tokens with " / ", e.g. "r3 / s1".
func (id ConfigID) String() string {
	return strings.Join(id, " / ")
}

// isAssert reports whether id is an assertion-test id. Assertion tests are
// never consulted against, or written to, the outcome cache (I4).
func (id ConfigID) isAssert() bool {
	for _, tok := range id {
		if tok == "assert" {
			return true
		}
	}
	return false
}

// withRun appends "rN" and tok to prefix, producing e.g.
// (idPrefix..., "r3", "s1").
func withRun(prefix ConfigID, run int, tok string) ConfigID {
	id := make(ConfigID, 0, len(prefix)+2)
	id = append(id, prefix...)
	id = append(id, fmt.Sprintf("r%d", run), tok)
	return id
}
