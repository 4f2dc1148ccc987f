package repository

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSortKey = errors.New("invalid sort key")

const gameColumns = `g.id, g.title, g.subtitle, g.description, g.rating, g.user_rating,
		       g.cover, g.banner, g.release_date, g.version, g.gameplay_duration,
		       g.total_views, g.monthly_views, g.weekly_views, g.online, g.offline,
		       g.created_at, g.updated_at`

// sortableColumns whitelists the orderby keys accepted from clients.
var sortableColumns = map[string]string{
	"title":             "g.title",
	"subtitle":          "g.subtitle",
	"rating":            "g.rating",
	"user_rating":       "g.user_rating",
	"release_date":      "g.release_date",
	"gameplay_duration": "g.gameplay_duration",
	"total_views":       "g.total_views",
	"monthly_views":     "g.monthly_views",
	"weekly_views":      "g.weekly_views",
	"version":           "g.version",
	"created_at":        "g.created_at",
}

// GameFilter narrows the catalog. Empty fields do not filter.
type GameFilter struct {
	Search  string
	Genre   string
	OrderBy string
}

// OrderClause turns "rating" / "-rating" into an ORDER BY expression. The id
// tie-breaker keeps pages stable when the sort column has duplicates.
func OrderClause(orderBy string) (string, error) {
	if orderBy == "" {
		return "g.id", nil
	}

	direction := "ASC"
	key := orderBy
	if strings.HasPrefix(key, "-") {
		direction = "DESC"
		key = key[1:]
	}

	column, ok := sortableColumns[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, orderBy)
	}

	return fmt.Sprintf("%s %s, g.id", column, direction), nil
}

// escapeLike makes user text match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildGameWhere renders the search and genre conditions. The genre check is an
// EXISTS subquery so a game is returned once however many genres matched.
func buildGameWhere(f GameFilter) (string, []any) {
	var conditions []string
	var args []any

	if f.Search != "" {
		args = append(args, escapeLike(f.Search))
		conditions = append(conditions,
			fmt.Sprintf(`g.title ILIKE '%%' || $%d || '%%' ESCAPE '\'`, len(args)))
	}

	if f.Genre != "" {
		args = append(args, f.Genre)
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM game_genres gg
			JOIN genres ge ON ge.id = gg.genre_id
			WHERE gg.game_id = g.id AND ge.name = $%d)`, len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func buildGameSearchQuery(f GameFilter, limit, offset int) (string, []any, error) {
	order, err := OrderClause(f.OrderBy)
	if err != nil {
		return "", nil, err
	}

	where, args := buildGameWhere(f)

	var qb strings.Builder
	qb.WriteString("SELECT ")
	qb.WriteString(gameColumns)
	qb.WriteString(" FROM games g")
	qb.WriteString(where)
	qb.WriteString(" ORDER BY ")
	qb.WriteString(order)
	qb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	return qb.String(), args, nil
}

func buildGameCountQuery(f GameFilter) (string, []any) {
	where, args := buildGameWhere(f)
	return "SELECT COUNT(*) FROM games g" + where, args
}

// Selector is a fixed, parameterless slice of the catalog for the home page.
type Selector struct {
	Name    string
	Where   string
	OrderBy string
	Limit   int
}

var (
	SelectorTrending = Selector{Name: "trending", OrderBy: "g.weekly_views DESC, g.user_rating DESC", Limit: 6}
	SelectorPopular  = Selector{Name: "popular", OrderBy: "g.user_rating DESC", Limit: 6}
	SelectorMostView = Selector{Name: "most_viewed", OrderBy: "g.monthly_views DESC, g.total_views DESC", Limit: 6}
	SelectorNew      = Selector{Name: "new", OrderBy: "g.release_date DESC", Limit: 6}
	SelectorCarousel = Selector{Name: "carousel", Where: "g.rating > 9.5 AND g.user_rating > 9", OrderBy: "g.rating DESC, g.user_rating DESC", Limit: 3}
	SelectorFeatured = Selector{Name: "featured", OrderBy: "random()", Limit: 5}
)

func buildSelectorQuery(s Selector) string {
	var qb strings.Builder
	qb.WriteString("SELECT ")
	qb.WriteString(gameColumns)
	qb.WriteString(" FROM games g")
	if s.Where != "" {
		qb.WriteString(" WHERE ")
		qb.WriteString(s.Where)
	}
	if s.OrderBy != "" {
		qb.WriteString(" ORDER BY ")
		qb.WriteString(s.OrderBy)
		if s.OrderBy != "random()" {
			qb.WriteString(", g.id")
		}
	}
	qb.WriteString(" LIMIT $1")
	return qb.String()
}
