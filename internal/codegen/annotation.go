package codegen

import (
	"strings"

	"github.com/rpattn/filtergen/internal/domain"
)

// Recognised filter annotation keywords.
const (
	TokenMultiple    = "multiple"
	TokenSubstring   = "substring"
	TokenInsensitive = "insensitive"
)

// Interpret resolves a set of annotation keywords into filter options. The
// checks are independent of order, and unknown keywords are ignored.
func Interpret(tokens []string) domain.FilterOpts {
	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		seen[strings.TrimSpace(t)] = true
	}

	opts := domain.DefaultFilterOpts()
	if seen[TokenMultiple] {
		opts.Multiplicity = domain.Multiple
	}

	switch {
	case seen[TokenSubstring] && seen[TokenInsensitive]:
		opts.Kind = domain.SubstringInsensitive
	case seen[TokenSubstring]:
		opts.Kind = domain.Substring
	case seen[TokenInsensitive]:
		opts.Kind = domain.ExactInsensitive
	}

	return opts
}

// ParseTokens splits a comma separated annotation such as
// "substring, insensitive". An empty annotation is a bare marker and yields
// a non-nil empty slice.
func ParseTokens(annotation string) []string {
	tokens := []string{}
	for _, part := range strings.Split(annotation, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// UnknownTokens returns the keywords Interpret ignores.
func UnknownTokens(tokens []string) []string {
	var unknown []string
	for _, t := range tokens {
		switch strings.TrimSpace(t) {
		case TokenMultiple, TokenSubstring, TokenInsensitive:
		default:
			unknown = append(unknown, t)
		}
	}
	return unknown
}
