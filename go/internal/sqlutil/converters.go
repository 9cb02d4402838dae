package sqlutil

import (
	"database/sql"
)

// Helper functions for converting between Go types and sql.Null* types

// FromSqlString converts sql.NullString to Go string with default
func FromSqlString(val sql.NullString, defaultVal string) string {
	if !val.Valid {
		return defaultVal
	}
	return val.String
}
