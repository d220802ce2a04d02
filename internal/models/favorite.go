package models

// FavoriteDoc: una película marcada como favorita por un usuario.
// El set de imdb_keys de un usuario es la única señal positiva
// que alimenta al recomendador.
type FavoriteDoc struct {
	UserID    int    `json:"userId" bson:"userId"`
	ImdbKey   string `json:"imdbKey" bson:"imdbKey"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}
