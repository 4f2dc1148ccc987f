package response

import "game-catalog/pkg/utils"

// PaginationMeta is everything a page strip needs to render.
type PaginationMeta struct {
	Total         int64 `json:"total"`
	Page          int   `json:"page"`
	PerPage       int   `json:"per_page"`
	TotalPages    int   `json:"total_pages"`
	HasOtherPages bool  `json:"has_other_pages"`
	HasPrevious   bool  `json:"has_previous"`
	PreviousPage  int   `json:"previous_page,omitempty"`
	HasNext       bool  `json:"has_next"`
	NextPage      int   `json:"next_page,omitempty"`
	NextPages     []int `json:"next_pages"`
}

func PageToMeta(p utils.Page) PaginationMeta {
	nextPages := p.NextPages
	if nextPages == nil {
		nextPages = []int{}
	}
	return PaginationMeta{
		Total:         p.Total,
		Page:          p.Number,
		PerPage:       p.PerPage,
		TotalPages:    p.NumPages,
		HasOtherPages: p.HasOtherPages,
		HasPrevious:   p.HasPrevious,
		PreviousPage:  p.PreviousPage,
		HasNext:       p.HasNext,
		NextPage:      p.NextPage,
		NextPages:     nextPages,
	}
}
