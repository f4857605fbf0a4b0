// Package db provides transaction propagation and shared GORM scopes.
package db

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsFold matches rows where any of the columns contains term, ignoring
// case. LOWER/LIKE is used instead of ILIKE so the scope also runs on SQLite.
// Column names must come from code, never from user input.
// The returned scope is safe for concurrent use.
func ContainsFold(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return func(tx *gorm.DB) *gorm.DB { return tx }
	}

	pattern := "%" + strings.ToLower(likeEscaper.Replace(term)) + "%"
	clauses := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		clauses[i] = "LOWER(" + col + `) LIKE ? ESCAPE '\'`
		args[i] = pattern
	}
	query := "(" + strings.Join(clauses, " OR ") + ")"

	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(query, args...)
	}
}

// Paginate applies LIMIT/OFFSET when limit is positive.
func Paginate(offset, limit int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return tx
		}
		if offset < 0 {
			offset = 0
		}
		return tx.Offset(offset).Limit(limit)
	}
}
