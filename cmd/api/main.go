// cmd/api/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/soumik-d/magicbricks-scraper/internal/api/handlers"
	"github.com/soumik-d/magicbricks-scraper/internal/api/services"
	"github.com/soumik-d/magicbricks-scraper/internal/config"
	"github.com/soumik-d/magicbricks-scraper/internal/fetcher"
	"github.com/soumik-d/magicbricks-scraper/internal/scraper"
	"github.com/soumik-d/magicbricks-scraper/pkg/logger"
)

func main() {
	// .env is optional; env vars override the YAML config.
	godotenv.Load()

	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.App.Addr = addr
	}

	runLog, err := logger.New(cfg.App.LogFile)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer runLog.Close()

	// Setup dependencies
	fetch := fetcher.New(cfg.Scraping.UserAgent, runLog)
	extract := scraper.New(cfg.Scraping.Selectors, runLog)
	pipeline := services.NewPipeline(fetch, extract, runLog)
	handler := handlers.New(pipeline, runLog)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	log.Printf("Server running on %s", cfg.App.Addr)
	log.Fatal(http.ListenAndServe(cfg.App.Addr, r))
}
