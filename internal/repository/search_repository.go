package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/okcampus/campus-map-api/internal/model"
)

// SearchRepo answers free-text map searches across buildings, rooms,
// businesses and parking lots. Matching is token based: a candidate
// matches when every token is a case-insensitive substring of at least
// one of that entity's searchable fields.
type SearchRepo struct {
	db *sql.DB
}

// NewSearchRepo constructs a SearchRepo with the given DB handle.
func NewSearchRepo(db *sql.DB) *SearchRepo { return &SearchRepo{db: db} }

// maxSearchTokens caps how many query tokens participate in matching.
const maxSearchTokens = 5

// Per-type result caps keep the flat response list bounded.
const (
	buildingLimit = 25
	roomLimit     = 50
	businessLimit = 50
	parkingLimit  = 50
)

// SearchResult is one tagged hit in the flat search response. Only the
// fields relevant to the entity type are populated; coordinates are
// included so the client can center the map on the hit.
type SearchResult struct {
	Type         string   `json:"type"`
	ID           uint64   `json:"id"`
	Name         *string  `json:"name,omitempty"`
	Code         *string  `json:"code,omitempty"`
	Description  *string  `json:"description,omitempty"`
	RoomNumber   *string  `json:"room_number,omitempty"`
	Capacity     *uint32  `json:"capacity,omitempty"`
	RoomType     *string  `json:"room_type,omitempty"`
	Category     *string  `json:"category,omitempty"`
	BuildingID   *uint64  `json:"building_id,omitempty"`
	BuildingCode *string  `json:"building_code,omitempty"`
	BuildingName *string  `json:"building_name,omitempty"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// SearchTokens splits a raw query on whitespace, drops empty fragments,
// lower-cases the rest and caps the count at maxSearchTokens. An empty or
// whitespace-only query yields nil.
func SearchTokens(q string) []string {
	fields := strings.Fields(q)
	if len(fields) == 0 {
		return nil
	}
	if len(fields) > maxSearchTokens {
		fields = fields[:maxSearchTokens]
	}
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = strings.ToLower(f)
	}
	return tokens
}

// tokenClause builds "(<f1> LIKE ? OR <f2> LIKE ? ...) AND (...)": one OR
// group per token across the given field expressions. Field expressions
// must already be lower-cased and wrapped NULL-safe with LOWER(IFNULL(...)).
// The returned args hold one %token% per field per token.
func tokenClause(fieldExprs []string, tokens []string) (string, []any) {
	groups := make([]string, len(tokens))
	args := make([]any, 0, len(tokens)*len(fieldExprs))
	for i, tok := range tokens {
		parts := make([]string, len(fieldExprs))
		for j, f := range fieldExprs {
			parts[j] = f + " LIKE ?"
			args = append(args, "%"+tok+"%")
		}
		groups[i] = "(" + strings.Join(parts, " OR ") + ")"
	}
	return strings.Join(groups, " AND "), args
}

// Search runs the token query against every entity type and returns a flat
// tagged result list: buildings first, then rooms, businesses and parking
// lots, each in their natural name order and capped per type. An empty
// query returns an empty list without touching the database.
func (r *SearchRepo) Search(ctx context.Context, query string) ([]SearchResult, error) {
	tokens := SearchTokens(query)
	results := make([]SearchResult, 0)
	if len(tokens) == 0 {
		return results, nil
	}

	buildings, err := r.searchBuildings(ctx, tokens)
	if err != nil {
		return nil, err
	}
	results = append(results, buildings...)

	rooms, err := r.searchRooms(ctx, tokens)
	if err != nil {
		return nil, err
	}
	results = append(results, rooms...)

	businesses, err := r.searchBusinesses(ctx, tokens)
	if err != nil {
		return nil, err
	}
	results = append(results, businesses...)

	parking, err := r.searchParking(ctx, tokens)
	if err != nil {
		return nil, err
	}
	results = append(results, parking...)

	return results, nil
}

func (r *SearchRepo) searchBuildings(ctx context.Context, tokens []string) ([]SearchResult, error) {
	clause, args := tokenClause([]string{
		"LOWER(name)", "LOWER(code)", "LOWER(IFNULL(description,''))",
	}, tokens)
	q := `SELECT id, code, name, description, latitude, longitude
	      FROM buildings
	      WHERE ` + clause + `
	      ORDER BY name ASC
	      LIMIT ` + limitStr(buildingLimit)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SearchResult
	for rows.Next() {
		var b model.Building
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.Description, &b.Latitude, &b.Longitude); err != nil {
			return nil, err
		}
		code, name := b.Code, b.Name
		out = append(out, SearchResult{
			Type: "building", ID: b.ID, Code: &code, Name: &name,
			Description: b.Description, Latitude: b.Latitude, Longitude: b.Longitude,
		})
	}
	return out, rows.Err()
}

func (r *SearchRepo) searchRooms(ctx context.Context, tokens []string) ([]SearchResult, error) {
	clause, args := tokenClause([]string{
		"LOWER(r.room_number)", "LOWER(IFNULL(r.room_type,''))",
		"LOWER(IFNULL(b.code,''))", "LOWER(IFNULL(b.name,''))",
	}, tokens)
	q := `SELECT r.id, r.room_number, r.capacity, r.room_type,
	             b.id, b.code, b.name, b.latitude, b.longitude
	      FROM rooms r
	      LEFT JOIN buildings b ON b.id = r.building_id
	      WHERE ` + clause + `
	      ORDER BY b.name ASC, r.room_number ASC
	      LIMIT ` + limitStr(roomLimit)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SearchResult
	for rows.Next() {
		var (
			res        SearchResult
			roomNumber string
			capacity   uint32
		)
		if err := rows.Scan(&res.ID, &roomNumber, &capacity, &res.RoomType,
			&res.BuildingID, &res.BuildingCode, &res.BuildingName, &res.Latitude, &res.Longitude); err != nil {
			return nil, err
		}
		res.Type = "room"
		res.RoomNumber = &roomNumber
		res.Capacity = &capacity
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *SearchRepo) searchBusinesses(ctx context.Context, tokens []string) ([]SearchResult, error) {
	clause, args := tokenClause([]string{
		"LOWER(bs.name)", "LOWER(IFNULL(bs.category,''))", "LOWER(IFNULL(bs.description,''))",
	}, tokens)
	q := `SELECT bs.id, bs.name, bs.category, bs.description, bs.latitude, bs.longitude,
	             b.id, b.code, b.name
	      FROM businesses bs
	      LEFT JOIN buildings b ON b.id = bs.building_id
	      WHERE ` + clause + `
	      ORDER BY bs.name ASC
	      LIMIT ` + limitStr(businessLimit)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SearchResult
	for rows.Next() {
		var (
			res  SearchResult
			name string
		)
		if err := rows.Scan(&res.ID, &name, &res.Category, &res.Description, &res.Latitude, &res.Longitude,
			&res.BuildingID, &res.BuildingCode, &res.BuildingName); err != nil {
			return nil, err
		}
		res.Type = "business"
		res.Name = &name
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *SearchRepo) searchParking(ctx context.Context, tokens []string) ([]SearchResult, error) {
	clause, args := tokenClause([]string{
		"LOWER(name)", "LOWER(IFNULL(description,''))",
	}, tokens)
	q := `SELECT id, name, description, latitude, longitude
	      FROM parking_lots
	      WHERE ` + clause + `
	      ORDER BY name ASC
	      LIMIT ` + limitStr(parkingLimit)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SearchResult
	for rows.Next() {
		var (
			res  SearchResult
			name string
		)
		if err := rows.Scan(&res.ID, &name, &res.Description, &res.Latitude, &res.Longitude); err != nil {
			return nil, err
		}
		res.Type = "parking"
		res.Name = &name
		out = append(out, res)
	}
	return out, rows.Err()
}

// limitStr inlines a constant cap into the query text; LIMIT cannot be a
// placeholder in all MySQL configurations.
func limitStr(n int) string { return strconv.Itoa(n) }
