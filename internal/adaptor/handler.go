package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"game-catalog/internal/usecase"
	"game-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Game     *GameHandler
	Review   *ReviewHandler
	Taxonomy *TaxonomyHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Catalog:  NewCatalogHandler(service.Home, service.Catalog, log),
		Game:     NewGameHandler(service.Game, log),
		Review:   NewReviewHandler(service.Review, log),
		Taxonomy: NewTaxonomyHandler(service.Taxonomy, log),
	}
}

// decodeJSON reads the body into dst, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// handleServiceError maps service errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErrs utils.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseValidation(w, validationErrs.Fields())

	case errors.Is(err, usecase.ErrInvalidSortKey):
		log.Warn(operation+" failed - invalid sort key", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidReference):
		log.Warn(operation+" failed - unknown reference", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Not found")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrAccountInactive),
		errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadyExists):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
