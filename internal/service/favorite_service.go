package service

import (
	"context"
	"fmt"
	"log"

	"wildflix-api/internal/cache"
	"wildflix-api/internal/catalog"
	"wildflix-api/internal/repository"
)

type FavoriteService struct {
	catalog *catalog.Store
	favs    *repository.FavoriteRepository
}

func NewFavoriteService(store *catalog.Store, favs *repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{catalog: store, favs: favs}
}

// invalidate borra las recomendaciones cacheadas del usuario: con otros
// favoritos la lista cambia.
func (s *FavoriteService) invalidate(ctx context.Context, userID int) {
	if err := cache.DeleteByPrefix(ctx, fmt.Sprintf("rec:user:%d:", userID)); err != nil {
		log.Printf("[favorites] ⚠️ no pude invalidar caché de user %d: %v", userID, err)
	}
}

// Add valida la imdb_key contra el catálogo antes de guardar.
func (s *FavoriteService) Add(ctx context.Context, userID int, imdbKey string) error {
	cat := s.catalog.Get()
	if cat == nil {
		return fmt.Errorf("catálogo no cargado")
	}
	if _, ok := cat.IndexOf(imdbKey); !ok {
		return fmt.Errorf("película %s no encontrada", imdbKey)
	}

	if err := s.favs.Add(ctx, userID, imdbKey); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID int, imdbKey string) error {
	if err := s.favs.Remove(ctx, userID, imdbKey); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// List devuelve las películas favoritas con sus datos de catálogo.
// Favoritos que ya no existen en el catálogo se omiten sin error.
func (s *FavoriteService) List(ctx context.Context, userID int) ([]catalog.Movie, error) {
	cat := s.catalog.Get()
	if cat == nil {
		return nil, fmt.Errorf("catálogo no cargado")
	}

	keys, err := s.favs.ListKeys(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Movie, 0, len(keys))
	for _, k := range keys {
		if i, ok := cat.IndexOf(k); ok {
			out = append(out, cat.Movies[i])
		}
	}
	return out, nil
}

func (s *FavoriteService) Has(ctx context.Context, userID int, imdbKey string) (bool, error) {
	return s.favs.Has(ctx, userID, imdbKey)
}
