package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/swaggo/swag"

	"hybrid_recommend_viewer/config"
	_ "hybrid_recommend_viewer/docs" // swagger annotations
	"hybrid_recommend_viewer/handlers"
	"hybrid_recommend_viewer/logger"
	"hybrid_recommend_viewer/repository"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("logger initialized", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	// Warm the catalog cache up front; a malformed catalog line fails the
	// process at startup rather than on the first page view.
	idx, err := repository.LoadProjectsIndex(cfg.ProjectPath())
	if err != nil {
		logger.Error("project catalog load failed", "path", cfg.ProjectPath(), "error", err)
		os.Exit(1)
	}
	logger.Info("project catalog loaded", "path", cfg.ProjectPath(), "projects", len(idx))

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handlers.RegisterRoutes(r, cfg)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", serverAddr)
	logger.Info("swagger available", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Server.Port), r))
}
