package repository

import (
	"errors"
	"strings"
	"testing"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		orderBy string
		want    string
	}{
		{"", "g.id"},
		{"rating", "g.rating ASC, g.id"},
		{"-rating", "g.rating DESC, g.id"},
		{"release_date", "g.release_date ASC, g.id"},
		{"-weekly_views", "g.weekly_views DESC, g.id"},
	}

	for _, tt := range tests {
		got, err := OrderClause(tt.orderBy)
		if err != nil {
			t.Errorf("OrderClause(%q) unexpected error: %v", tt.orderBy, err)
			continue
		}
		if got != tt.want {
			t.Errorf("OrderClause(%q): expected %q, got %q", tt.orderBy, tt.want, got)
		}
	}
}

func TestOrderClause_UnknownKey(t *testing.T) {
	for _, key := range []string{"password", "-", "--rating", "rating; DROP TABLE games", "RATING"} {
		_, err := OrderClause(key)
		if !errors.Is(err, ErrInvalidSortKey) {
			t.Errorf("OrderClause(%q): expected ErrInvalidSortKey, got %v", key, err)
		}
	}
}

func TestBuildGameWhere_Empty(t *testing.T) {
	where, args := buildGameWhere(GameFilter{})

	if where != "" {
		t.Errorf("Expected empty where, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestBuildGameWhere_SearchAndGenre(t *testing.T) {
	where, args := buildGameWhere(GameFilter{Search: "50%_off", Genre: "Action"})

	if len(args) != 2 {
		t.Fatalf("Expected 2 args, got %d", len(args))
	}
	if args[0] != `50\%\_off` {
		t.Errorf("Expected escaped search text, got %q", args[0])
	}
	if args[1] != "Action" {
		t.Errorf("Expected genre arg 'Action', got %q", args[1])
	}
	if !strings.Contains(where, "g.title ILIKE '%' || $1 || '%'") {
		t.Errorf("Expected case-insensitive substring match on $1, got %q", where)
	}
	if !strings.Contains(where, "ge.name = $2") {
		t.Errorf("Expected exact genre match on $2, got %q", where)
	}
	// genre must not be a JOIN on the outer query or games would repeat per genre
	if !strings.Contains(where, "EXISTS (") {
		t.Errorf("Expected genre filter as EXISTS subquery, got %q", where)
	}
}

func TestBuildGameWhere_GenreOnly(t *testing.T) {
	where, args := buildGameWhere(GameFilter{Genre: "RPG"})

	if len(args) != 1 || args[0] != "RPG" {
		t.Fatalf("Expected single RPG arg, got %v", args)
	}
	if !strings.Contains(where, "ge.name = $1") {
		t.Errorf("Expected genre placeholder $1, got %q", where)
	}
	if strings.Contains(where, "ILIKE") {
		t.Errorf("Expected no title condition, got %q", where)
	}
}

func TestBuildGameSearchQuery(t *testing.T) {
	query, args, err := buildGameSearchQuery(GameFilter{Search: "zelda", OrderBy: "-rating"}, 16, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "ORDER BY g.rating DESC, g.id") {
		t.Errorf("Expected descending rating order, got %q", query)
	}
	if !strings.HasSuffix(query, "LIMIT $2 OFFSET $3") {
		t.Errorf("Expected limit/offset on $2/$3, got %q", query)
	}
	if len(args) != 3 || args[1] != 16 || args[2] != 32 {
		t.Errorf("Expected args [zelda 16 32], got %v", args)
	}
}

func TestBuildGameSearchQuery_InvalidSort(t *testing.T) {
	_, _, err := buildGameSearchQuery(GameFilter{OrderBy: "nope"}, 16, 0)
	if !errors.Is(err, ErrInvalidSortKey) {
		t.Errorf("Expected ErrInvalidSortKey, got %v", err)
	}
}

func TestBuildGameCountQuery(t *testing.T) {
	query, args := buildGameCountQuery(GameFilter{Genre: "Action"})

	if !strings.HasPrefix(query, "SELECT COUNT(*) FROM games g WHERE EXISTS") {
		t.Errorf("Unexpected count query %q", query)
	}
	if len(args) != 1 {
		t.Errorf("Expected 1 arg, got %d", len(args))
	}
}

func TestBuildSelectorQuery(t *testing.T) {
	tests := []struct {
		sel      Selector
		contains []string
		excludes []string
	}{
		{SelectorTrending, []string{"ORDER BY g.weekly_views DESC, g.user_rating DESC, g.id"}, []string{"WHERE"}},
		{SelectorPopular, []string{"ORDER BY g.user_rating DESC, g.id"}, []string{"WHERE"}},
		{SelectorMostView, []string{"ORDER BY g.monthly_views DESC, g.total_views DESC, g.id"}, []string{"WHERE"}},
		{SelectorNew, []string{"ORDER BY g.release_date DESC, g.id"}, []string{"WHERE"}},
		{SelectorCarousel, []string{"WHERE g.rating > 9.5 AND g.user_rating > 9"}, nil},
		{SelectorFeatured, []string{"ORDER BY random() LIMIT $1"}, []string{"g.id LIMIT"}},
	}

	for _, tt := range tests {
		t.Run(tt.sel.Name, func(t *testing.T) {
			query := buildSelectorQuery(tt.sel)
			for _, s := range tt.contains {
				if !strings.Contains(query, s) {
					t.Errorf("Expected %q in %q", s, query)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(query, s) {
					t.Errorf("Did not expect %q in %q", s, query)
				}
			}
			if !strings.HasSuffix(query, "LIMIT $1") {
				t.Errorf("Expected LIMIT $1 suffix, got %q", query)
			}
		})
	}
}

func TestSelectorLimits(t *testing.T) {
	limits := map[string]int{
		SelectorTrending.Name: 6,
		SelectorPopular.Name:  6,
		SelectorMostView.Name: 6,
		SelectorNew.Name:      6,
		SelectorCarousel.Name: 3,
		SelectorFeatured.Name: 5,
	}
	for _, sel := range []Selector{SelectorTrending, SelectorPopular, SelectorMostView, SelectorNew, SelectorCarousel, SelectorFeatured} {
		if sel.Limit != limits[sel.Name] {
			t.Errorf("%s: expected limit %d, got %d", sel.Name, limits[sel.Name], sel.Limit)
		}
	}
}
