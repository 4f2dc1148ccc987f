package adaptor

import (
	"net/http"

	"game-catalog/internal/dto/request"
	"game-catalog/internal/usecase"
	"game-catalog/pkg/utils"

	"go.uber.org/zap"
)

// CatalogHandler serves the read-only browse pages: home and /games/.
type CatalogHandler struct {
	home    usecase.HomeService
	catalog usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(home usecase.HomeService, catalog usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		home:    home,
		catalog: catalog,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// Home handles GET /
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.home.Home(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "build home page")
		return
	}

	utils.ResponseSuccess(w, "success", home)
}

// Games handles GET /games/?search=&genre=&orderby=&page=
func (h *CatalogHandler) Games(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.GameSearchRequest{
		Search:  query.Get("search"),
		Genre:   query.Get("genre"),
		OrderBy: query.Get("orderby"),
		Page:    query.Get("page"),
	}

	result, err := h.catalog.Search(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "search games")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
