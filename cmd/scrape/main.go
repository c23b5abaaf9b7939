// cmd/scrape/main.go

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/soumik-d/magicbricks-scraper/internal/config"
	"github.com/soumik-d/magicbricks-scraper/internal/export"
	"github.com/soumik-d/magicbricks-scraper/internal/fetcher"
	"github.com/soumik-d/magicbricks-scraper/internal/scraper"
	"github.com/soumik-d/magicbricks-scraper/pkg/logger"
)

func main() {
	url := flag.String("url", "", "results page URL to scrape")
	out := flag.String("out", "", "write an xlsx file here instead of printing JSON")
	configDir := flag.String("config", "configs", "config directory")
	flag.Parse()

	if *url == "" {
		log.Fatal("missing -url")
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	runLog, err := logger.New(cfg.App.LogFile)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer runLog.Close()

	fetch := fetcher.New(cfg.Scraping.UserAgent, runLog)
	markup, err := fetch.Fetch(context.Background(), *url)
	if err != nil {
		log.Fatalf("failed to fetch page: %v", err)
	}

	properties, err := scraper.New(cfg.Scraping.Selectors, runLog).Extract(markup)
	if err != nil {
		log.Fatalf("failed to extract listings: %v", err)
	}

	if *out != "" {
		data, err := export.ToExcel(properties)
		if err != nil {
			log.Fatalf("failed to build spreadsheet: %v", err)
		}
		if err := os.WriteFile(*out, data, 0644); err != nil {
			log.Fatalf("failed to write %s: %v", *out, err)
		}
		log.Printf("wrote %d properties to %s", len(properties), *out)
		return
	}

	jsonData, err := json.MarshalIndent(properties, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal to JSON: %v", err)
	}

	fmt.Println(string(jsonData))
}
