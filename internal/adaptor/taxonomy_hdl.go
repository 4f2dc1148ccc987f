package adaptor

import (
	"net/http"

	"game-catalog/internal/dto/request"
	"game-catalog/internal/usecase"
	"game-catalog/pkg/utils"

	"go.uber.org/zap"
)

type TaxonomyHandler struct {
	service usecase.TaxonomyService
	log     *zap.Logger
}

func NewTaxonomyHandler(service usecase.TaxonomyService, log *zap.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{
		service: service,
		log:     log.With(zap.String("handler", "taxonomy")),
	}
}

// GetGenres handles GET /api/genres
func (h *TaxonomyHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.ListGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list genres")
		return
	}
	utils.ResponseSuccess(w, "success", genres)
}

// GetCompanies handles GET /api/companies
func (h *TaxonomyHandler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.ListCompanies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list companies")
		return
	}
	utils.ResponseSuccess(w, "success", companies)
}

// GetPlatforms handles GET /api/platforms
func (h *TaxonomyHandler) GetPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := h.service.ListPlatforms(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list platforms")
		return
	}
	utils.ResponseSuccess(w, "success", platforms)
}

// CreateGenre handles POST /api/admin/genres
func (h *TaxonomyHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Debug("Request rejected", zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseValidation(w, validationErrors)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create genre")
		return
	}
	utils.ResponseCreated(w, "Genre created", genre)
}

// CreateCompany handles POST /api/admin/companies
func (h *TaxonomyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req request.CompanyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Debug("Request rejected", zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseValidation(w, validationErrors)
		return
	}

	company, err := h.service.CreateCompany(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create company")
		return
	}
	utils.ResponseCreated(w, "Company created", company)
}

// CreatePlatform handles POST /api/admin/platforms
func (h *TaxonomyHandler) CreatePlatform(w http.ResponseWriter, r *http.Request) {
	var req request.PlatformRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Debug("Request rejected", zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseValidation(w, validationErrors)
		return
	}

	platform, err := h.service.CreatePlatform(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create platform")
		return
	}
	utils.ResponseCreated(w, "Platform created", platform)
}
