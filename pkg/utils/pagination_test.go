package utils

import (
	"math"
	"reflect"
	"testing"
)

func TestPaginate_TwentyItems(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantNumber int
		wantOffset int
		wantRows   int
	}{
		{"first page", "1", 1, 0, 16},
		{"second page", "2", 2, 16, 4},
		{"past the end clamps to last", "3", 2, 16, 4},
		{"far past the end", "999", 2, 16, 4},
		{"non numeric", "abc", 1, 0, 16},
		{"empty", "", 1, 0, 16},
		{"zero", "0", 1, 0, 16},
		{"negative", "-4", 1, 0, 16},
		{"padded", " 2 ", 2, 16, 4},
		{"max int", "9223372036854775807", 2, 16, 4},
		{"overflows int", "99999999999999999999", 2, 16, 4},
		{"overflows int negative", "-99999999999999999999", 1, 0, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(20, 16, tt.raw)

			if page.Number != tt.wantNumber {
				t.Errorf("Expected page %d, got %d", tt.wantNumber, page.Number)
			}
			if page.Offset != tt.wantOffset {
				t.Errorf("Expected offset %d, got %d", tt.wantOffset, page.Offset)
			}
			rows := 20 - page.Offset
			if rows > page.Limit() {
				rows = page.Limit()
			}
			if rows != tt.wantRows {
				t.Errorf("Expected %d rows on page, got %d", tt.wantRows, rows)
			}
			if page.NumPages != 2 {
				t.Errorf("Expected 2 pages, got %d", page.NumPages)
			}
			if !page.HasOtherPages {
				t.Error("Expected HasOtherPages to be true")
			}
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	page := Paginate(0, 16, "5")

	if page.NumPages != 1 {
		t.Errorf("Expected 1 page for empty set, got %d", page.NumPages)
	}
	if page.Number != 1 {
		t.Errorf("Expected page 1, got %d", page.Number)
	}
	if page.HasOtherPages || page.HasNext || page.HasPrevious {
		t.Errorf("Expected no neighbours, got %+v", page)
	}
	if len(page.NextPages) != 0 {
		t.Errorf("Expected no next pages, got %v", page.NextPages)
	}
}

func TestPaginate_NextPagesWindow(t *testing.T) {
	tests := []struct {
		total int64
		raw   string
		want  []int
	}{
		{160, "1", []int{2, 3, 4, 5}},
		{160, "8", []int{9, 10}},
		{160, "10", []int{}},
		{48, "1", []int{2, 3}},
	}

	for _, tt := range tests {
		page := Paginate(tt.total, 16, tt.raw)
		if !reflect.DeepEqual(page.NextPages, tt.want) {
			t.Errorf("total=%d page=%s: expected next pages %v, got %v", tt.total, tt.raw, tt.want, page.NextPages)
		}
		if len(page.NextPages)+1 > 5 {
			t.Errorf("Expected at most 5 page links, got %d", len(page.NextPages)+1)
		}
	}
}

func TestPaginate_Neighbours(t *testing.T) {
	page := Paginate(100, 16, "3")

	if !page.HasPrevious || page.PreviousPage != 2 {
		t.Errorf("Expected previous page 2, got %d (has=%v)", page.PreviousPage, page.HasPrevious)
	}
	if !page.HasNext || page.NextPage != 4 {
		t.Errorf("Expected next page 4, got %d (has=%v)", page.NextPage, page.HasNext)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	cases := map[int64]int{0: 1, 1: 1, 16: 1, 17: 2, 32: 2, 33: 3}
	for total, want := range cases {
		if got := CalculateTotalPages(total, 16); got != want {
			t.Errorf("total=%d: expected %d pages, got %d", total, want, got)
		}
	}
}

func TestParsePageNumber_Overflow(t *testing.T) {
	if got := ParsePageNumber("99999999999999999999"); got != math.MaxInt {
		t.Errorf("Expected math.MaxInt for an oversized page, got %d", got)
	}
	if got := ParsePageNumber("1e99"); got != 1 {
		t.Errorf("Expected 1 for a non-integer page, got %d", got)
	}
}
