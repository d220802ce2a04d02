package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"wildflix-api/internal/catalog"
	"wildflix-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type FavoriteHandler struct {
	svc *service.FavoriteService
}

func NewFavoriteHandler(s *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: s}
}

type favoriteRequest struct {
	ImdbKey string `json:"imdbKey"`
}

// @Summary Marcar favorita (usuario autenticado)
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Param body body favoriteRequest true "película"
// @Success 204
// @Failure 400 {string} string "imdbKey requerido o desconocido"
// @Router /me/favorites [put]
func (h *FavoriteHandler) PutMyFavorite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ImdbKey == "" {
		http.Error(w, "body inválido (imdbKey requerido)", http.StatusBadRequest)
		return
	}

	if err := h.svc.Add(r.Context(), userID, req.ImdbKey); err != nil {
		if strings.Contains(err.Error(), "no encontrada") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Quitar favorita (usuario autenticado)
// @Tags favorites
// @Security BearerAuth
// @Param key path string true "imdb_key"
// @Success 204
// @Router /me/favorites/{key} [delete]
func (h *FavoriteHandler) DeleteMyFavorite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	key := chi.URLParam(r, "key")

	if err := h.svc.Remove(r.Context(), userID, key); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar mis favoritas
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {array} catalog.Movie
// @Router /me/favorites [get]
func (h *FavoriteHandler) GetMyFavorites(w http.ResponseWriter, r *http.Request) {
	h.writeFavorites(w, r, UserIDFromContext(r.Context()))
}

// @Summary Favoritas de cualquier usuario (ADMIN)
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Success 200 {array} catalog.Movie
// @Router /users/{id}/favorites [get]
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	h.writeFavorites(w, r, userID)
}

func (h *FavoriteHandler) writeFavorites(w http.ResponseWriter, r *http.Request, userID int) {
	w.Header().Set("Content-Type", "application/json")
	movies, err := h.svc.List(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if movies == nil {
		movies = []catalog.Movie{}
	}
	_ = json.NewEncoder(w).Encode(movies)
}
