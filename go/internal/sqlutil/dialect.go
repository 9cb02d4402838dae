package sqlutil

import (
	"strconv"
	"strings"
)

// Dialect identifies the SQL flavour a query is sent to.
type Dialect int

const (
	MySQL Dialect = iota
	Postgres
)

func (d Dialect) String() string {
	switch d {
	case MySQL:
		return "mysql"
	case Postgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// ParseDialect maps a driver name to its Dialect.
func ParseDialect(name string) (Dialect, bool) {
	switch strings.ToLower(name) {
	case "mysql":
		return MySQL, true
	case "postgres", "postgresql":
		return Postgres, true
	default:
		return MySQL, false
	}
}

// Rebind rewrites ? placeholders into the dialect's bind syntax.
// Queries are written with ? and passed through unchanged for MySQL.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
