package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"game-catalog/internal/dto/response"
	"game-catalog/internal/usecase"

	"go.uber.org/zap"
)

func TestGames_ReadsQueryString(t *testing.T) {
	catalog := &fakeCatalogService{resp: &response.CatalogResponse{PageTitle: "Games"}}
	h := NewCatalogHandler(&fakeHomeService{}, catalog, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/games/?search=zelda&genre=RPG&orderby=-rating&page=2", nil)
	rr := httptest.NewRecorder()
	h.Games(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	got := catalog.lastReq
	if got.Search != "zelda" || got.Genre != "RPG" || got.OrderBy != "-rating" || got.Page != "2" {
		t.Errorf("Unexpected search request %+v", got)
	}
}

func TestGames_InvalidSortKey(t *testing.T) {
	catalog := &fakeCatalogService{err: fmt.Errorf("%w: %q", usecase.ErrInvalidSortKey, "secret")}
	h := NewCatalogHandler(&fakeHomeService{}, catalog, zap.NewNop())

	rr := httptest.NewRecorder()
	h.Games(rr, httptest.NewRequest(http.MethodGet, "/games/?orderby=secret", nil))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestHome(t *testing.T) {
	tests := []struct {
		name string
		home *fakeHomeService
		code int
	}{
		{"renders", &fakeHomeService{resp: &response.HomeResponse{Site: response.SiteMeta{Title: "Game Catalog"}}}, http.StatusOK},
		{"selector failure", &fakeHomeService{err: errors.New("selector new: timeout")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCatalogHandler(tt.home, &fakeCatalogService{}, zap.NewNop())
			rr := httptest.NewRecorder()
			h.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			if rr.Code != tt.code {
				t.Errorf("Expected %d, got %d", tt.code, rr.Code)
			}
		})
	}
}
