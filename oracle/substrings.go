// Package oracle provides ready-made ddmin.Test implementations for common
// delta-debugging use cases, plus a cache-warming helper for running
// independent oracle calls ahead of a real, always-sequential ddmin run.
// Nothing here is part of the sequential core (spec.md §1 scopes the oracle
// itself out as an external collaborator); these are direct consumers of
// the exported Test/Cache contracts.
package oracle

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/ddmin"
)

// Render turns a configuration into the byte stream the oracle scans —
// the rendered source file, the reassembled packet, whatever the caller's
// unit type represents once concatenated.
type Render[U any] func(config []U) []byte

// Substrings builds a ddmin.Test that reports Fail whenever the rendered
// configuration contains at least one of signatures — the classic
// "does this reduced input still trip a known crash signature" oracle. It
// scans for all signatures in a single linear pass via an Aho-Corasick
// automaton rather than one bytes.Contains per signature.
func Substrings[U any](render Render[U], signatures ...[]byte) (ddmin.Test[U], error) {
	if len(signatures) == 0 {
		return nil, fmt.Errorf("oracle: Substrings: at least one signature is required")
	}
	builder := ahocorasick.NewBuilder()
	for _, sig := range signatures {
		if len(sig) == 0 {
			return nil, fmt.Errorf("oracle: Substrings: signatures must not be empty")
		}
		builder.AddPattern(sig)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("oracle: Substrings: %w", err)
	}

	return func(config []U, _ ddmin.ConfigID) (ddmin.Outcome, error) {
		if automaton.IsMatch(render(config)) {
			return ddmin.Fail, nil
		}
		return ddmin.Pass, nil
	}, nil
}
