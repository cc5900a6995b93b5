package repository

import (
	"reflect"
	"strings"
	"testing"
)

func TestSearchTokens(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t  ", nil},
		{"single", "Library", []string{"library"}},
		{"multi with extra spaces", "  Science   Building ", []string{"science", "building"}},
		{"mixed case", "ART 102", []string{"art", "102"}},
		{"capped at five", "a b c d e f g", []string{"a", "b", "c", "d", "e"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SearchTokens(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SearchTokens(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTokenClause(t *testing.T) {
	fields := []string{"LOWER(IFNULL(name,''))", "LOWER(IFNULL(code,''))"}
	clause, args := tokenClause(fields, []string{"sci", "lab"})

	// One AND group per token, one OR branch per field.
	if got := strings.Count(clause, " AND "); got != 1 {
		t.Errorf("AND count = %d, want 1 (clause %q)", got, clause)
	}
	if got := strings.Count(clause, " OR "); got != 2 {
		t.Errorf("OR count = %d, want 2 (clause %q)", got, clause)
	}
	if got := strings.Count(clause, "LIKE ?"); got != 4 {
		t.Errorf("placeholder count = %d, want 4", got)
	}

	want := []any{"%sci%", "%sci%", "%lab%", "%lab%"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %#v, want %#v", args, want)
	}
}

func TestTokenClauseSingleTokenSingleField(t *testing.T) {
	clause, args := tokenClause([]string{"LOWER(IFNULL(name,''))"}, []string{"gym"})
	if clause != "(LOWER(IFNULL(name,'')) LIKE ?)" {
		t.Errorf("clause = %q", clause)
	}
	if len(args) != 1 || args[0] != "%gym%" {
		t.Errorf("args = %#v", args)
	}
}
