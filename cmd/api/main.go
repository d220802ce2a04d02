package main

import (
	"log"
	"net/http"

	_ "wildflix-api/docs" // swagger docs

	"wildflix-api/internal/cache"
	"wildflix-api/internal/catalog"
	"wildflix-api/internal/config"
	"wildflix-api/internal/db"
	"wildflix-api/internal/handler"
	"wildflix-api/internal/knn"
	"wildflix-api/internal/repository"
	"wildflix-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title WildFlix API
// @version 1.0
// @description API de catálogo y recomendaciones (KNN por contenido, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// catálogo en memoria: sin él no hay nada que servir
	store := catalog.NewStore(cfg.CatalogCSV)
	if err := store.Reload(); err != nil {
		log.Fatalf("❌ Error cargando catálogo %s: %v", cfg.CatalogCSV, err)
	}

	// los KNN_<metric>.gob se cargan perezosamente; si faltan, el motor
	// degrada al scorer de contenido sin tirar el servicio
	modelCache := knn.NewCache()

	// repos
	userRepo := repository.NewUserRepository()
	favRepo := repository.NewFavoriteRepository()
	recRepo := repository.NewRecommendationRepository()
	settingsRepo := repository.NewSettingsRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(store)
	recSvc := service.NewRecommendService(store, modelCache, cfg.MLModelsDir, favRepo, settingsRepo, recRepo)
	favSvc := service.NewFavoriteService(store, favRepo)
	adminSvc := service.NewAdminService(store, cfg.MLModelsDir, settingsRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc, recSvc)
	favH := handler.NewFavoriteHandler(favSvc)
	recH := handler.NewRecommendHandler(recSvc)
	adminH := handler.NewAdminHandler(adminSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Catálogo (público)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/featured", movieH.Featured)
	r.Get("/movies/blockbusters", movieH.Blockbusters)
	r.Get("/movies/gems", movieH.Gems)
	r.Get("/movies/niche", movieH.Niche)
	r.Get("/movies/{key}", movieH.GetMovie)
	r.Get("/movies/{key}/similar", movieH.Similar)

	r.Get("/recommender/status", recH.Status)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Put("/profile", authH.UpdateMyProfile)

			r.Get("/favorites", favH.GetMyFavorites)
			r.Put("/favorites", favH.PutMyFavorite)
			r.Delete("/favorites/{key}", favH.DeleteMyFavorite)

			r.Get("/recommendations", recH.GetMyRecommendations)
			r.Get("/recommendations/history", recH.GetMyHistory)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// gestión de usuarios
			r.Get("/users", authH.ListUsers)
			r.Put("/users/{id}/update", authH.UpdateUser)

			// favoritos y recomendaciones de cualquier usuario
			r.Route("/users/{id}", func(r chi.Router) {
				r.Get("/", authH.GetUserByID)

				r.Get("/favorites", favH.GetFavorites)

				// HTTP normal
				r.Get("/recommendations", recH.GetRecommendations)

				// WebSocket
				r.Get("/ws/recommendations", recH.GetRecommendationsWS)
			})

			// --- mantenimiento: modelo activo, catálogo, estado ---
			handler.MountAdminRoutes(r, adminH)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
