package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/karenpiper/movievibe/internal/cache"
	"github.com/karenpiper/movievibe/internal/catalog"
	"github.com/karenpiper/movievibe/internal/config"
	"github.com/karenpiper/movievibe/internal/db"
	"github.com/karenpiper/movievibe/internal/handler"
	"github.com/karenpiper/movievibe/internal/repository"
	"github.com/karenpiper/movievibe/internal/service"
	"github.com/karenpiper/movievibe/internal/synthesis"
	"github.com/karenpiper/movievibe/internal/tmdb"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title MovieVibe Taste API
// @version 1.0
// @description API de recomendación por vibes (perfil de 10 dimensiones, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	defer db.Disconnect()
	cache.InitRedis(cfg)

	// repos
	catalogRepo := repository.NewCatalogRepository()
	profileRepo := repository.NewProfileRepository()
	onboardingRepo := repository.NewOnboardingRepository()

	// núcleo del modelo de gustos
	synth := synthesis.NewSynthesizer()
	store := catalog.NewStore()

	// services
	popSvc := service.NewPopulationService(store, catalogRepo, synth)
	movieSvc := service.NewMovieService(store, catalogRepo, synth, tmdb.NewClient(cfg.TMDBAccessToken))
	recSvc := service.NewRecommendService(store)
	profileSvc := service.NewProfileService(profileRepo, store, cfg.CollabEnabled)
	onboardSvc := service.NewOnboardingService(store, onboardingRepo, recSvc)

	// ==========================================
	// Poblar el catálogo antes de aceptar tráfico
	// ==========================================
	{
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		if err := popSvc.EnsurePopulated(ctx); err != nil {
			log.Printf("[population] catálogo en modo degradado: %v", err)
		}
		cancel()
	}

	// handlers
	sessionH := handler.NewSessionHandler(cfg.JWTSecret)
	movieH := handler.NewMovieHandler(movieSvc, store)
	recH := handler.NewRecommendHandler(recSvc, profileSvc)
	ratingH := handler.NewRatingHandler(profileSvc)
	onboardH := handler.NewOnboardingHandler(onboardSvc)
	insightsH := handler.NewInsightsHandler(store, popSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)
	r.Get("/dimensions", handler.Dimensions)

	r.Post("/session", sessionH.Create)

	// Catálogo (público, solo lectura)
	r.Get("/movies", movieH.List)
	r.Get("/movies/tmdb/search", movieH.SearchTMDB)
	r.Get("/movies/{id}", movieH.Get)
	r.Get("/insights", insightsH.Get)

	// ================================
	// Rutas protegidas con sesión JWT
	// ================================
	authMw := handler.SessionAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Post("/vibe/recommendations", recH.PostRecommendations)

		// gestión de películas
		r.Post("/movies", movieH.Create)
		r.Post("/movies/tmdb/{tmdbId}", movieH.AddFromTMDB)
		r.Patch("/movies/{id}/seen", movieH.PatchSeen)
		r.Post("/movies/{id}/rate", ratingH.PostRating)

		// perfil del usuario
		r.Get("/profile", ratingH.GetProfile)
		r.Get("/profile/neighbors", ratingH.GetNeighbors)

		// onboarding guiado
		r.Route("/onboarding", func(r chi.Router) {
			r.Post("/start", onboardH.Start)
			r.Post("/begin", onboardH.Begin)
			r.Post("/answer", onboardH.Answer)
			r.Post("/overall", onboardH.Overall)
			r.Post("/skip", onboardH.Skip)
			r.Post("/finish", onboardH.Finish)
			r.Get("/status", onboardH.Status)
			r.Delete("/", onboardH.Reset)
		})

		// WebSocket de repoblación
		r.Get("/catalog/ws/progress", insightsH.PopulateWS)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
