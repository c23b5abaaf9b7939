package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewCreatesLogDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scraper.log")

	log, err := New(path)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer log.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file was not created: %v", err)
	}
}

func TestLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraper.log")

	log, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	log.Info("fetched page")
	log.Warn("empty url")
	log.Error("status", 404)
	log.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), data)
	}
	for i, want := range []string{"INFO: fetched page", "WARN: empty url", "ERROR: status 404"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
}
