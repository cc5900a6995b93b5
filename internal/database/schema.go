package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema applies schema.sql statement by statement. Every statement
// uses IF NOT EXISTS so running it against an already provisioned database
// is a no-op.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range SplitStatements(schemaSQL) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// SplitStatements breaks a SQL script into individual statements on ";",
// dropping comment-only lines and empty fragments. None of the schema
// statements contain literal semicolons so a plain split is sufficient.
func SplitStatements(script string) []string {
	var out []string
	for _, raw := range strings.Split(script, ";") {
		var lines []string
		for _, line := range strings.Split(raw, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			lines = append(lines, line)
		}
		stmt := strings.TrimSpace(strings.Join(lines, "\n"))
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
