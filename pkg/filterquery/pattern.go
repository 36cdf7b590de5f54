package filterquery

import "strings"

var (
	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	globEscaper = strings.NewReplacer(`[`, `[[]`, `*`, `[*]`, `?`, `[?]`)
)

// EscapeLike escapes LIKE metacharacters so v only ever matches itself.
// The escape character is a backslash, the Postgres default and the one
// declared by SQLite renderings.
func EscapeLike(v string) string {
	return likeEscaper.Replace(v)
}

// ContainsPattern wraps an escaped v in LIKE wildcards.
func ContainsPattern(v string) string {
	return "%" + EscapeLike(v) + "%"
}

// EscapeGlob escapes SQLite GLOB metacharacters.
func EscapeGlob(v string) string {
	return globEscaper.Replace(v)
}

// ContainsGlob wraps an escaped v in GLOB wildcards.
func ContainsGlob(v string) string {
	return "*" + EscapeGlob(v) + "*"
}
