package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"wildflix-api/internal/cache"
	"wildflix-api/internal/catalog"
	"wildflix-api/internal/knn"
	"wildflix-api/internal/models"
	"wildflix-api/internal/recommend"
	"wildflix-api/internal/repository"
)

const (
	DefaultRecommendations = 10
	MaxRecommendations     = 50

	recCacheTTLSeconds = 3600
)

type RecommendService struct {
	catalog   *catalog.Store
	models    *knn.Cache
	modelsDir string
	favs      *repository.FavoriteRepository
	settings  *repository.SettingsRepository
	recs      *repository.RecommendationRepository
	engine    *recommend.Engine
}

func NewRecommendService(
	store *catalog.Store,
	modelCache *knn.Cache,
	modelsDir string,
	favs *repository.FavoriteRepository,
	settings *repository.SettingsRepository,
	recs *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		catalog:   store,
		models:    modelCache,
		modelsDir: modelsDir,
		favs:      favs,
		settings:  settings,
		recs:      recs,
		engine:    recommend.NewEngine(recommend.DefaultOptions()),
	}
}

func clampN(n int) int {
	if n <= 0 {
		return DefaultRecommendations
	}
	if n > MaxRecommendations {
		return MaxRecommendations
	}
	return n
}

// metric resuelve la variante de modelo activa. Valor raro en Mongo →
// cosine y un warning, nunca error.
func (s *RecommendService) metric(ctx context.Context) string {
	m, err := s.settings.GetRecommenderModel(ctx)
	if err != nil {
		log.Printf("[recommend] ⚠️ no pude leer settings, uso cosine: %v", err)
		return knn.MetricCosine
	}
	if m == "" {
		return knn.MetricCosine
	}
	if !knn.ValidMetric(m) {
		log.Printf("[recommend] ⚠️ métrica %q inválida en settings, uso cosine", m)
		return knn.MetricCosine
	}
	return m
}

// loadModel intenta cargar el KNN_<metric>.gob activo. Si falla devuelve
// nil + motivo; el motor degradará al scorer de contenido.
func (s *RecommendService) loadModel(ctx context.Context, cat *catalog.Catalog) (recommend.NeighborModel, string, string) {
	metric := s.metric(ctx)
	path := filepath.Join(s.modelsDir, "KNN_"+metric+".gob")

	m, err := s.models.Get(path)
	if err != nil {
		return nil, metric, fmt.Sprintf("modelo %s no disponible: %v", metric, err)
	}
	if m.Len() != cat.Len() {
		return nil, metric, fmt.Sprintf("modelo %s desalineado con el catálogo (%d vs %d filas)", metric, m.Len(), cat.Len())
	}
	return m, metric, ""
}

// ==================== Recomendaciones personales ====================

// Recommend genera la lista del usuario. Cachea en Redis 1h por (user, n);
// refresh=true salta la caché (p. ej. justo después de tocar favoritos).
func (s *RecommendService) Recommend(ctx context.Context, userID, n int, refresh bool) ([]models.RecItem, *models.RecommenderStatus, error) {
	n = clampN(n)
	cacheKey := fmt.Sprintf("rec:user:%d:n:%d", userID, n)

	if !refresh {
		var cached struct {
			Items  []models.RecItem         `json:"items"`
			Status models.RecommenderStatus `json:"status"`
		}
		if ok, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached.Items, &cached.Status, nil
		}
	}

	cat := s.catalog.Get()
	if cat == nil {
		return nil, nil, fmt.Errorf("catálogo no cargado")
	}

	favorites, err := s.favs.ListKeys(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	model, metric, reason := s.loadModel(ctx, cat)
	res := s.engine.Recommend(cat, model, reason, favorites, n)
	items := s.toRecItems(cat, res.Items)
	status := statusFor(res, metric)

	// historial best-effort: una lista fallida de guardar sigue siendo válida
	rec := &models.Recommendation{
		UserID:  userID,
		Backend: res.Backend,
		Metric:  status.Metric,
		Params:  map[string]any{"n": n, "favorites": len(favorites)},
		Items:   items,
	}
	if err := s.recs.Insert(ctx, rec); err != nil {
		log.Printf("[recommend] ⚠️ no pude guardar historial de user %d: %v", userID, err)
	}

	payload := struct {
		Items  []models.RecItem         `json:"items"`
		Status models.RecommenderStatus `json:"status"`
	}{Items: items, Status: *status}
	if err := cache.SetJSON(ctx, cacheKey, payload, recCacheTTLSeconds); err != nil {
		log.Printf("[recommend] ⚠️ no pude cachear %s: %v", cacheKey, err)
	}

	return items, status, nil
}

// SimilarMovies: misma maquinaria con una sola película como semilla.
func (s *RecommendService) SimilarMovies(ctx context.Context, imdbKey string, n int) ([]models.RecItem, *models.RecommenderStatus, error) {
	n = clampN(n)
	cacheKey := fmt.Sprintf("sim:%s:n:%d", imdbKey, n)

	var cached struct {
		Items  []models.RecItem         `json:"items"`
		Status models.RecommenderStatus `json:"status"`
	}
	if ok, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
		return cached.Items, &cached.Status, nil
	}

	cat := s.catalog.Get()
	if cat == nil {
		return nil, nil, fmt.Errorf("catálogo no cargado")
	}
	if _, ok := cat.IndexOf(imdbKey); !ok {
		return nil, nil, fmt.Errorf("película %s no encontrada", imdbKey)
	}

	model, metric, reason := s.loadModel(ctx, cat)
	res := s.engine.SimilarTo(cat, model, reason, imdbKey, n)
	items := s.toRecItems(cat, res.Items)
	status := statusFor(res, metric)

	payload := struct {
		Items  []models.RecItem         `json:"items"`
		Status models.RecommenderStatus `json:"status"`
	}{Items: items, Status: *status}
	if err := cache.SetJSON(ctx, cacheKey, payload, recCacheTTLSeconds); err != nil {
		log.Printf("[recommend] ⚠️ no pude cachear %s: %v", cacheKey, err)
	}

	return items, status, nil
}

// History devuelve las últimas listas guardadas del usuario.
func (s *RecommendService) History(ctx context.Context, userID int, limit int64) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.recs.FindByUser(ctx, userID, limit)
}

// Status reporta qué backend respondería ahora mismo, sin generar nada.
func (s *RecommendService) Status(ctx context.Context) *models.RecommenderStatus {
	cat := s.catalog.Get()
	if cat == nil {
		return &models.RecommenderStatus{Backend: recommend.BackendFallback, Reason: "catálogo no cargado"}
	}
	model, metric, reason := s.loadModel(ctx, cat)
	if model == nil {
		return &models.RecommenderStatus{Backend: recommend.BackendFallback, Metric: metric, Reason: reason}
	}
	return &models.RecommenderStatus{Backend: recommend.BackendModel + "_" + metric, Metric: metric}
}

// ==================== helpers ====================

func (s *RecommendService) toRecItems(cat *catalog.Catalog, items []recommend.Item) []models.RecItem {
	out := make([]models.RecItem, 0, len(items))
	for _, it := range items {
		title := ""
		if it.Index >= 0 && it.Index < cat.Len() {
			title = cat.Movies[it.Index].Title
		}
		out = append(out, models.RecItem{ImdbKey: it.Key, Title: title, Score: it.Score})
	}
	return out
}

func statusFor(res recommend.Result, metric string) *models.RecommenderStatus {
	if res.Backend == recommend.BackendModel {
		return &models.RecommenderStatus{Backend: recommend.BackendModel + "_" + res.Metric, Metric: res.Metric}
	}
	return &models.RecommenderStatus{Backend: recommend.BackendFallback, Metric: metric, Reason: res.Reason}
}
