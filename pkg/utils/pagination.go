package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Number of page links shown after the current one in a page strip.
const nextPagesWindow = 4

// Page is a resolved position inside an ordered result set.
type Page struct {
	Number        int
	PerPage       int
	Total         int64
	NumPages      int
	Offset        int
	HasOtherPages bool
	HasPrevious   bool
	PreviousPage  int
	HasNext       bool
	NextPage      int
	NextPages     []int
}

// Limit is the row count to fetch for this page.
func (p Page) Limit() int {
	return p.PerPage
}

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// ParsePageNumber reads a raw page parameter. Anything that is not a positive
// integer becomes 1. A positive integer too large for int becomes math.MaxInt
// so that callers clamp it to the last page.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) && isDigits(strings.TrimPrefix(strings.TrimSpace(raw), "+")) {
		return math.MaxInt
	}
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Paginate resolves rawPage against total rows split into pages of perPage.
// It never fails: bad input lands on page 1, pages past the end land on the last page.
func Paginate(total int64, perPage int, rawPage string) Page {
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}

	numPages := CalculateTotalPages(total, perPage)
	number := ParsePageNumber(rawPage)
	if number > numPages {
		number = numPages
	}

	page := Page{
		Number:        number,
		PerPage:       perPage,
		Total:         total,
		NumPages:      numPages,
		Offset:        CalculateOffset(number, perPage),
		HasOtherPages: numPages > 1,
		HasPrevious:   number > 1,
		HasNext:       number < numPages,
		NextPages:     []int{},
	}
	if page.HasPrevious {
		page.PreviousPage = number - 1
	}
	if page.HasNext {
		page.NextPage = number + 1
	}
	for n := number + 1; n <= numPages && n <= number+nextPagesWindow; n++ {
		page.NextPages = append(page.NextPages, n)
	}

	return page
}
