// internal/config/config.go
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Scraping ScrapingConfig `yaml:"scraping"`
}

type AppConfig struct {
	Name    string `yaml:"name"`
	Addr    string `yaml:"addr"`
	LogFile string `yaml:"log_file"`
}

type ScrapingConfig struct {
	UserAgent string    `yaml:"user_agent"`
	Selectors Selectors `yaml:"selectors"`
}

// Selectors describes the markup shape of the target results page. The
// defaults match the current MagicBricks layout; a site redesign is a config
// edit, not a code change.
type Selectors struct {
	Listing       string `yaml:"listing"`
	Title         string `yaml:"title"`
	TitleAttr     string `yaml:"title_attr"`
	Price         string `yaml:"price"`
	SummaryItem   string `yaml:"summary_item"`
	SummaryAttr   string `yaml:"summary_attr"`
	CarpetArea    string `yaml:"carpet_area"`
	SummaryValue  string `yaml:"summary_value"`
	Seller        string `yaml:"seller"`
	LocationSep   string `yaml:"location_sep"`
	TypeStartMark string `yaml:"type_start_mark"`
	TypeEndMark   string `yaml:"type_end_mark"`
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "magicbricks-scraper",
			Addr:    ":8080",
			LogFile: filepath.Join("logs", "scraper.log"),
		},
		Scraping: ScrapingConfig{
			UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:91.0) Gecko/20100101 Firefox/91.0",
			Selectors: Selectors{
				Listing:       "div.mb-srp__list",
				Title:         "h2.mb-srp__card--title",
				TitleAttr:     "title",
				Price:         "div.mb-srp__card__price--amount",
				SummaryItem:   "div.mb-srp__card__summary__list--item",
				SummaryAttr:   "data-summary",
				CarpetArea:    "carpet-area",
				SummaryValue:  "div.mb-srp__card__summary--value",
				Seller:        "div.mb-srp__card__ads__info--name",
				LocationSep:   " in ",
				TypeStartMark: "BHK",
				TypeEndMark:   "for",
			},
		},
	}
}

// Load returns the defaults overlaid with the YAML files under dir, when they
// exist. Missing files are not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	if err := loadYAML(filepath.Join(dir, "app.yaml"), cfg); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, "scraping.yaml"), &cfg.Scraping); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, out)
}
