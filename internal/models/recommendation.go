package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecItem struct {
	ImdbKey string  `bson:"imdbKey" json:"imdbKey"`
	Title   string  `bson:"title"   json:"title"`
	Score   float64 `bson:"score"   json:"score"`
}

// Recommendation: historial de una lista generada (se guarda best-effort).
type Recommendation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    int                `bson:"userId"        json:"userId"`
	Backend   string             `bson:"backend"       json:"backend"` // knn | fallback
	Metric    string             `bson:"metric"        json:"metric"`
	Params    any                `bson:"params"        json:"params"`
	Items     []RecItem          `bson:"items"         json:"items"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}

// ====== Estado del recomendador (para /recommender/status) ======

type RecommenderStatus struct {
	Backend string `json:"backend"`          // "knn_<metric>" o "fallback"
	Metric  string `json:"metric"`           // métrica seleccionada
	Reason  string `json:"reason,omitempty"` // por qué estamos en fallback
}
