package response

import (
	"game-catalog/internal/data/entity"
	"game-catalog/pkg/utils"
)

type GenreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CompanyResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	IsDev    bool    `json:"is_dev"`
	IsPub    bool    `json:"is_pub"`
	OpenedAt *string `json:"opened_at,omitempty"`
	ClosedAt *string `json:"closed_at,omitempty"`
}

type PlatformResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Manufacturers []string `json:"manufacturers"`
}

// Helper converters
func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID.String(),
		Name: genre.Name,
	}
}

func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i, g := range genres {
		out[i] = GenreToResponse(g)
	}
	return out
}

func CompanyToResponse(company *entity.Company) CompanyResponse {
	resp := CompanyResponse{
		ID:    company.ID.String(),
		Name:  company.Name,
		IsDev: company.IsDev,
		IsPub: company.IsPub,
	}
	if company.OpenedAt != nil {
		opened := company.OpenedAt.Format(utils.DateLayout)
		resp.OpenedAt = &opened
	}
	if company.ClosedAt != nil {
		closed := company.ClosedAt.Format(utils.DateLayout)
		resp.ClosedAt = &closed
	}
	return resp
}

func PlatformToResponse(platform *entity.Platform) PlatformResponse {
	return PlatformResponse{
		ID:            platform.ID.String(),
		Name:          platform.Name,
		Manufacturers: CompanyNames(platform.Manufacturers),
	}
}

func CompanyNames(companies []*entity.Company) []string {
	names := make([]string, len(companies))
	for i, c := range companies {
		names[i] = c.Name
	}
	return names
}

func PlatformNames(platforms []*entity.Platform) []string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = p.Name
	}
	return names
}
