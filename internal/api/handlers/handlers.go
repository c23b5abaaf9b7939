// internal/api/handlers/handlers.go

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/soumik-d/magicbricks-scraper/internal/api/services"
	"github.com/soumik-d/magicbricks-scraper/internal/domain"
	"github.com/soumik-d/magicbricks-scraper/internal/export"
	"github.com/soumik-d/magicbricks-scraper/pkg/logger"
)

type Handler struct {
	pipeline *services.Pipeline
	log      *logger.Logger
}

func New(pipeline *services.Pipeline, log *logger.Logger) *Handler {
	return &Handler{pipeline: pipeline, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.HandleIndex).Methods("GET")
	r.HandleFunc("/scrape", h.HandleScrape).Methods("POST")
	r.HandleFunc("/download", h.HandleDownload).Methods("GET")
	r.HandleFunc("/api/properties", h.HandleProperties).Methods("GET")
}

func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	_, hasData := h.pipeline.Last()
	h.render(w, pageData{HasData: hasData})
}

func (h *Handler) HandleScrape(w http.ResponseWriter, r *http.Request) {
	url := r.FormValue("url")
	if url == "" {
		_, hasData := h.pipeline.Last()
		h.render(w, pageData{
			Warning: "Please enter a valid URL.",
			HasData: hasData,
		})
		return
	}

	properties, err := h.pipeline.Run(r.Context(), url)
	if err != nil {
		_, hasData := h.pipeline.Last()
		h.render(w, pageData{
			URL:     url,
			Error:   "Failed to retrieve the HTML content.",
			HasData: hasData,
		})
		return
	}

	if len(properties) == 0 {
		_, hasData := h.pipeline.Last()
		h.render(w, pageData{
			URL:     url,
			Error:   "No properties found or parsed. Check selectors.",
			HasData: hasData,
		})
		return
	}

	h.render(w, pageData{
		URL:     url,
		Columns: domain.Columns(),
		Records: properties,
		HasData: true,
	})
}

func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	properties, ok := h.pipeline.Last()
	if !ok {
		http.Error(w, "no scraped data to download", http.StatusNotFound)
		return
	}

	data, err := export.ToExcel(properties)
	if err != nil {
		h.log.Error("failed to export spreadsheet:", err)
		http.Error(w, "failed to build spreadsheet", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Write(data)
}

func (h *Handler) HandleProperties(w http.ResponseWriter, r *http.Request) {
	properties, _ := h.pipeline.Last()
	if properties == nil {
		properties = []domain.Property{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(properties); err != nil {
		h.log.Error("failed to encode properties:", err)
	}
}

func (h *Handler) render(w http.ResponseWriter, data pageData) {
	if err := page.Execute(w, data); err != nil {
		h.log.Error("failed to render page:", err)
	}
}
