package filterquery

import (
	"fmt"
	"strings"
)

// Dialect selects the SQL flavour a Query renders to.
type Dialect int

const (
	// Postgres renders $n placeholders, ILIKE and = ANY($n) array matches.
	Postgres Dialect = iota
	// SQLite renders ? placeholders, GLOB for case-sensitive substrings and
	// expands list matches into IN lists or OR groups. Case-insensitive
	// matches use LIKE, which folds ASCII letters only.
	SQLite
)

// ParseDialect maps a dialect name to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "postgres", "postgresql", "pg":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return Postgres, fmt.Errorf("unknown dialect %q", name)
	}
}

func (d Dialect) String() string {
	switch d {
	case SQLite:
		return "sqlite"
	default:
		return "postgres"
	}
}

// GoName is the exported identifier of the dialect constant, used by code
// generators that reference it.
func (d Dialect) GoName() string {
	switch d {
	case SQLite:
		return "SQLite"
	default:
		return "Postgres"
	}
}

func (d Dialect) placeholder(idx int) string {
	if d == SQLite {
		return "?"
	}
	return fmt.Sprintf("$%d", idx)
}
