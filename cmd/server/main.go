package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/jengzang/itinerary-planner-go/internal/api"
	"github.com/jengzang/itinerary-planner-go/internal/catalog"
	"github.com/jengzang/itinerary-planner-go/internal/config"
	"github.com/jengzang/itinerary-planner-go/internal/database"
	"github.com/jengzang/itinerary-planner-go/internal/handler"
	"github.com/jengzang/itinerary-planner-go/internal/planner"
	"github.com/jengzang/itinerary-planner-go/internal/repository"
	"github.com/jengzang/itinerary-planner-go/internal/service"
	"github.com/jengzang/itinerary-planner-go/internal/spatial"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}
	gin.SetMode(cfg.GinMode)

	dayStart, dayEnd, err := cfg.DayBounds()
	if err != nil {
		log.Fatal("Invalid planning day:", err)
	}

	distances, err := spatial.NewDistanceCache(cfg.DistanceCacheSize)
	if err != nil {
		log.Fatal("Failed to create distance cache:", err)
	}

	store, err := openCatalog(cfg)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}
	defer database.Close()

	p := planner.New(store, distances, planner.Options{
		DayStart:        dayStart,
		DayEnd:          dayEnd,
		Strategy:        planner.Strategy(cfg.RoutingStrategy),
		StationRadiusKm: cfg.StationRadiusKm,
		ReturnToOrigin:  true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := api.SetupRouter(ctx, cfg, api.Handlers{
		Itineraries: handler.NewItineraryHandler(service.NewItineraryService(p, store)),
		Catalog:     handler.NewCatalogHandler(service.NewCatalogService(store)),
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           corsHandler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
		return
	}
	log.Println("Server stopped")
}

// openCatalog serves the built-in dataset, or the sqlite catalog when
// DB_PATH is set
func openCatalog(cfg config.Config) (*catalog.Store, error) {
	if cfg.DBPath == "" {
		log.Println("[Catalog] Serving the built-in dataset")
		return catalog.NewStore(catalog.Default(), catalog.DefaultLoader), nil
	}

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		return nil, err
	}
	db := database.GetDB()

	if err := database.NewMigrationManager(db).RunMigrations(); err != nil {
		return nil, err
	}

	repo := repository.NewCatalogRepository(db)
	if _, err := repo.SeedDefaults(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return catalog.Open(ctx, repo.Load)
}
