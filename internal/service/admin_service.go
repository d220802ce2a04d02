package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"wildflix-api/internal/cache"
	"wildflix-api/internal/catalog"
	"wildflix-api/internal/knn"
	"wildflix-api/internal/repository"
)

// AdminService agrupa el mantenimiento operativo: variante de modelo
// activa, recarga del catálogo y un resumen de estado para el panel.
type AdminService struct {
	catalog   *catalog.Store
	modelsDir string
	settings  *repository.SettingsRepository
}

func NewAdminService(store *catalog.Store, modelsDir string, settings *repository.SettingsRepository) *AdminService {
	return &AdminService{catalog: store, modelsDir: modelsDir, settings: settings}
}

// ==================== Variante de modelo ====================

func (s *AdminService) GetRecommenderModel(ctx context.Context) (string, error) {
	m, err := s.settings.GetRecommenderModel(ctx)
	if err != nil {
		return "", err
	}
	if m == "" {
		m = knn.MetricCosine
	}
	return m, nil
}

// SetRecommenderModel cambia la variante activa e invalida todas las
// recomendaciones cacheadas (se generaron con la variante anterior).
func (s *AdminService) SetRecommenderModel(ctx context.Context, metric string) error {
	if !knn.ValidMetric(metric) {
		return fmt.Errorf("métrica inválida %q (cosine|euclidean|manhattan)", metric)
	}
	if err := s.settings.SetRecommenderModel(ctx, metric); err != nil {
		return err
	}

	for _, prefix := range []string{"rec:user:", "sim:"} {
		if err := cache.DeleteByPrefix(ctx, prefix); err != nil {
			log.Printf("[admin] ⚠️ no pude invalidar caché %s*: %v", prefix, err)
		}
	}
	log.Printf("[admin] 🔁 variante de recomendador → %s", metric)
	return nil
}

// ==================== Catálogo ====================

// ReloadCatalog relee el CSV del disco. Si falla, el snapshot anterior
// sigue sirviendo tráfico.
func (s *AdminService) ReloadCatalog(_ context.Context) (int, error) {
	if err := s.catalog.Reload(); err != nil {
		return 0, err
	}
	cat := s.catalog.Get()
	log.Printf("[admin] 📚 catálogo recargado: %d películas", cat.Len())
	return cat.Len(), nil
}

// ==================== Resumen de estado ====================

type SystemStatus struct {
	CatalogLoaded bool            `json:"catalogLoaded"`
	CatalogRows   int             `json:"catalogRows"`
	CatalogPath   string          `json:"catalogPath"`
	ActiveModel   string          `json:"activeModel"`
	Models        map[string]bool `json:"models"` // métrica → fichero presente
}

// Status inspecciona catálogo y ficheros de modelo en disco.
func (s *AdminService) Status(ctx context.Context) (*SystemStatus, error) {
	st := &SystemStatus{
		CatalogPath: s.catalog.Path(),
		Models:      map[string]bool{},
	}

	if cat := s.catalog.Get(); cat != nil {
		st.CatalogLoaded = true
		st.CatalogRows = cat.Len()
	}

	active, err := s.GetRecommenderModel(ctx)
	if err != nil {
		return nil, err
	}
	st.ActiveModel = active

	for _, metric := range []string{knn.MetricCosine, knn.MetricEuclidean, knn.MetricManhattan} {
		_, err := os.Stat(filepath.Join(s.modelsDir, "KNN_"+metric+".gob"))
		st.Models[metric] = err == nil
	}
	return st, nil
}
