// internal/fetcher/fetcher.go
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/soumik-d/magicbricks-scraper/pkg/logger"
)

// StatusError is returned when the target page answers with a non-200 status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code error: %d", e.Code)
}

type Fetcher struct {
	client    *http.Client
	userAgent string
	log       *logger.Logger
}

func New(userAgent string, log *logger.Logger) *Fetcher {
	return &Fetcher{
		client:    http.DefaultClient,
		userAgent: userAgent,
		log:       log,
	}
}

// Fetch issues one GET for url with the configured User-Agent and returns the
// response body. No retries, no explicit timeout; redirects follow the
// client's defaults.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.log.Error("failed to build request:", err)
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	res, err := f.client.Do(req)
	if err != nil {
		f.log.Error("failed to fetch page:", err)
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		f.log.Error("failed to fetch page: status", res.StatusCode)
		return "", &StatusError{Code: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		f.log.Error("failed to read response body:", err)
		return "", err
	}

	return string(body), nil
}
