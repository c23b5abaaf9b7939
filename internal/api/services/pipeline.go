// internal/api/services/pipeline.go
package services

import (
	"context"
	"sync"

	"github.com/soumik-d/magicbricks-scraper/internal/domain"
	"github.com/soumik-d/magicbricks-scraper/internal/fetcher"
	"github.com/soumik-d/magicbricks-scraper/internal/scraper"
	"github.com/soumik-d/magicbricks-scraper/pkg/logger"
)

// Pipeline runs one fetch-extract cycle and keeps the most recent non-empty
// result for the download and API endpoints. The slot is overwritten wholesale
// on each successful scrape; the mutex only exists because Go's HTTP server
// handles requests concurrently.
type Pipeline struct {
	fetcher   *fetcher.Fetcher
	extractor *scraper.Extractor
	log       *logger.Logger

	mu   sync.RWMutex
	last []domain.Property
}

func NewPipeline(f *fetcher.Fetcher, e *scraper.Extractor, log *logger.Logger) *Pipeline {
	return &Pipeline{fetcher: f, extractor: e, log: log}
}

// Run fetches url and extracts its listings. The returned slice is empty (with
// a nil error) when the page had no matching listing blocks.
func (p *Pipeline) Run(ctx context.Context, url string) ([]domain.Property, error) {
	markup, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	properties, err := p.extractor.Extract(markup)
	if err != nil {
		return nil, err
	}

	if len(properties) > 0 {
		p.mu.Lock()
		p.last = properties
		p.mu.Unlock()
		p.log.Info("scrape completed, properties:", len(properties))
	}

	return properties, nil
}

// Last returns the most recent non-empty result, if any.
func (p *Pipeline) Last() ([]domain.Property, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last, p.last != nil
}
