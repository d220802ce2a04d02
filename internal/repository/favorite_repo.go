package repository

import (
	"context"
	"time"

	"wildflix-api/internal/db"
	"wildflix-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{col: db.DB().Collection("favorites")}
}

// Add marca una película como favorita (idempotente: upsert por par usuario/película).
func (r *FavoriteRepository) Add(ctx context.Context, userID int, imdbKey string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "imdbKey": imdbKey},
		bson.M{"$setOnInsert": bson.M{
			"createdAt": time.Now().UTC().Format(time.RFC3339),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Remove quita el favorito; no es error que no existiera.
func (r *FavoriteRepository) Remove(ctx context.Context, userID int, imdbKey string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"userId": userID, "imdbKey": imdbKey})
	return err
}

// ListKeys devuelve el set de imdb_keys favoritas del usuario.
func (r *FavoriteRepository) ListKeys(ctx context.Context, userID int) ([]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []string
	for cur.Next(ctx) {
		var f models.FavoriteDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		if f.ImdbKey != "" {
			out = append(out, f.ImdbKey)
		}
	}
	return out, cur.Err()
}

// Has indica si la película ya es favorita del usuario.
func (r *FavoriteRepository) Has(ctx context.Context, userID int, imdbKey string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "imdbKey": imdbKey}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
