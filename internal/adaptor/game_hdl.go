package adaptor

import (
	"net/http"

	"game-catalog/internal/dto/request"
	"game-catalog/internal/usecase"
	"game-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GameHandler struct {
	service usecase.GameService
	log     *zap.Logger
}

func NewGameHandler(service usecase.GameService, log *zap.Logger) *GameHandler {
	return &GameHandler{
		service: service,
		log:     log.With(zap.String("handler", "game")),
	}
}

// GetGame handles GET /games/{id}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get game")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}

// CreateGame handles POST /api/admin/games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req request.GameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Debug("Request rejected", zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseValidation(w, validationErrors)
		return
	}

	game, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create game")
		return
	}

	utils.ResponseCreated(w, "Game created", game)
}

// UpdateGame handles PUT /api/admin/games/{id}
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	var req request.GameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Debug("Request rejected", zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseValidation(w, validationErrors)
		return
	}

	game, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update game")
		return
	}

	utils.ResponseSuccess(w, "Game updated", game)
}

// DeleteGame handles DELETE /api/admin/games/{id}
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete game")
		return
	}

	utils.ResponseSuccess(w, "Game deleted", nil)
}
