package handler

import (
	"encoding/json"
	"net/http"

	"wildflix-api/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminHandler expone el mantenimiento operativo: variante de modelo,
// recarga de catálogo y resumen de estado.
type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// @Summary Variante de modelo activa
// @Tags admin-maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /admin/recommender/model [get]
func (h *AdminHandler) GetRecommenderModel(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.GetRecommenderModel(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"model": m})
}

type setModelRequest struct {
	Model string `json:"model"`
}

// @Summary Cambiar variante de modelo
// @Description Selecciona el KNN activo (cosine | euclidean | manhattan) e invalida las cachés.
// @Tags admin-maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body setModelRequest true "variante"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "métrica inválida"
// @Router /admin/recommender/model [put]
func (h *AdminHandler) SetRecommenderModel(w http.ResponseWriter, r *http.Request) {
	var req setModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Model == "" {
		http.Error(w, "body inválido (model requerido)", http.StatusBadRequest)
		return
	}

	if err := h.svc.SetRecommenderModel(r.Context(), req.Model); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"model": req.Model})
}

// @Summary Recargar catálogo desde disco
// @Tags admin-maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {string} string "error releyendo el CSV"
// @Router /admin/catalog/reload [post]
func (h *AdminHandler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ReloadCatalog(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"rows": rows})
}

// @Summary Resumen de estado del sistema
// @Description Catálogo cargado, filas, variante activa y modelos presentes en disco.
// @Tags admin-maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.SystemStatus
// @Router /admin/status [get]
func (h *AdminHandler) Status(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Helper para montar rutas en main.go
func MountAdminRoutes(r chi.Router, h *AdminHandler) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/recommender/model", h.GetRecommenderModel)
		r.Put("/recommender/model", h.SetRecommenderModel)
		r.Post("/catalog/reload", h.ReloadCatalog)
		r.Get("/status", h.Status)
	})
}
