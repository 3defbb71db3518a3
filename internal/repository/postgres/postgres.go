package postgres

import (
	"database/sql"
	"errors"
	"strings"
)

// IsNoRowsError reports whether err means the queried row does not exist.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// splitKeywords decodes the array_to_string(keywords, ',') projection.
func splitKeywords(s string) []string {
	out := make([]string, 0)
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
