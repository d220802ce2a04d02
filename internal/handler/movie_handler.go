package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"wildflix-api/internal/catalog"
	"wildflix-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
	rec *service.RecommendService
}

func NewMovieHandler(s *service.MovieService, rec *service.RecommendService) *MovieHandler {
	return &MovieHandler{svc: s, rec: rec}
}

// @Summary Get movie
// @Tags movies
// @Produce json
// @Param key path string true "imdb_key"
// @Success 200 {object} catalog.Movie
// @Router /movies/{key} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	key := chi.URLParam(r, "key")
	m, err := h.svc.GetMovie(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if m == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(m)
}

// @Summary Búsqueda difusa por título
// @Tags movies
// @Produce json
// @Param q query string true "texto a buscar"
// @Param limit query int false "límite (default: 50)"
// @Success 200 {array} service.SearchHit
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	hits, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if hits == nil {
		hits = []service.SearchHit{}
	}
	_ = json.NewEncoder(w).Encode(hits)
}

// listHandler factoriza los cuatro rails de la portada.
func (h *MovieHandler) listHandler(fetch func(*http.Request, int) ([]catalog.Movie, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 {
			limit = 20
		}
		movies, err := fetch(r, limit)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if movies == nil {
			movies = []catalog.Movie{}
		}
		_ = json.NewEncoder(w).Encode(movies)
	}
}

// @Summary Películas destacadas de portada
// @Tags movies
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} catalog.Movie
// @Router /movies/featured [get]
func (h *MovieHandler) Featured(w http.ResponseWriter, r *http.Request) {
	h.listHandler(func(r *http.Request, n int) ([]catalog.Movie, error) {
		return h.svc.Featured(r.Context(), n)
	})(w, r)
}

// @Summary Blockbusters (mayor presupuesto)
// @Tags movies
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} catalog.Movie
// @Router /movies/blockbusters [get]
func (h *MovieHandler) Blockbusters(w http.ResponseWriter, r *http.Request) {
	h.listHandler(func(r *http.Request, n int) ([]catalog.Movie, error) {
		return h.svc.Blockbusters(r.Context(), n)
	})(w, r)
}

// @Summary Joyas infravaloradas
// @Tags movies
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} catalog.Movie
// @Router /movies/gems [get]
func (h *MovieHandler) Gems(w http.ResponseWriter, r *http.Request) {
	h.listHandler(func(r *http.Request, n int) ([]catalog.Movie, error) {
		return h.svc.UnderratedGems(r.Context(), n)
	})(w, r)
}

// @Summary Cine de nicho (pocos votos, buen score)
// @Tags movies
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} catalog.Movie
// @Router /movies/niche [get]
func (h *MovieHandler) Niche(w http.ResponseWriter, r *http.Request) {
	h.listHandler(func(r *http.Request, n int) ([]catalog.Movie, error) {
		return h.svc.NicheMovies(r.Context(), n)
	})(w, r)
}

// @Summary Películas similares a una dada
// @Tags movies
// @Produce json
// @Param key path string true "imdb_key"
// @Param n query int false "cantidad (máx 50)"
// @Success 200 {object} map[string]any
// @Router /movies/{key}/similar [get]
func (h *MovieHandler) Similar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	key := chi.URLParam(r, "key")
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	items, status, err := h.rec.SimilarMovies(r.Context(), key, n)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"items":  items,
		"status": status,
	})
}
