package repository

import (
	"context"
	"time"

	"wildflix-api/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ajustes globales del recomendador: un único documento con la variante
// de modelo seleccionada (cosine | euclidean | manhattan).
type SettingsRepository struct {
	col *mongo.Collection
}

type settingsDoc struct {
	ID               string `bson:"_id"`
	RecommenderModel string `bson:"recommenderModel"`
	UpdatedAt        string `bson:"updatedAt"`
}

const settingsDocID = "recommender"

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{col: db.DB().Collection("settings")}
}

// GetRecommenderModel devuelve la variante guardada ("" si nunca se fijó).
func (r *SettingsRepository) GetRecommenderModel(ctx context.Context) (string, error) {
	var doc settingsDoc
	err := r.col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return doc.RecommenderModel, nil
}

func (r *SettingsRepository) SetRecommenderModel(ctx context.Context, model string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": settingsDocID},
		bson.M{"$set": bson.M{
			"recommenderModel": model,
			"updatedAt":        time.Now().UTC().Format(time.RFC3339),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
