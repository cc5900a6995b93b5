package database

import (
	"strings"
	"testing"
)

func TestSplitStatements(t *testing.T) {
	script := `
-- bootstrap tables
CREATE TABLE a (
  id INT PRIMARY KEY
);

-- a trailing comment block
CREATE TABLE b (id INT);
`
	stmts := SplitStatements(script)
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2: %#v", len(stmts), stmts)
	}
	if !strings.HasPrefix(stmts[0], "CREATE TABLE a") {
		t.Errorf("first statement = %q", stmts[0])
	}
	if !strings.HasPrefix(stmts[1], "CREATE TABLE b") {
		t.Errorf("second statement = %q", stmts[1])
	}
	for _, s := range stmts {
		if strings.Contains(s, "--") {
			t.Errorf("comment leaked into statement: %q", s)
		}
	}
}

func TestSplitStatementsEmptyAndCommentsOnly(t *testing.T) {
	if got := SplitStatements(""); len(got) != 0 {
		t.Errorf("empty script produced %d statements", len(got))
	}
	if got := SplitStatements("-- nothing here\n\n-- still nothing\n"); len(got) != 0 {
		t.Errorf("comment-only script produced %d statements", len(got))
	}
}

func TestSchemaSQLSplits(t *testing.T) {
	stmts := SplitStatements(schemaSQL)
	if len(stmts) == 0 {
		t.Fatal("embedded schema produced no statements")
	}
	for _, tbl := range []string{"buildings", "rooms", "washrooms", "businesses", "parking_lots", "bus_stops", "users", "user_building_access", "events", "room_bookings", "refresh_tokens"} {
		found := false
		for _, s := range stmts {
			if strings.Contains(s, "CREATE TABLE IF NOT EXISTS "+tbl+" (") {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no CREATE TABLE statement for %s", tbl)
		}
	}
}
