package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// Files lists the category dumps in the order they are generated.
var Files = []string{"blocks.json", "biomes.json", "items.json", "particles.json", "entities.json"}

// Fetch configures the data downloader.
type Fetch struct {
	BaseURL  string `yaml:"base_url"`
	Platform string `yaml:"platform"`
	Version  string `yaml:"version"`
	DataDir  string `yaml:"data_dir"`

	// Sources overrides the URL of individual files, keyed by file name
	// (e.g. "biomes.json").
	Sources map[string]string `yaml:"sources"`
}

// DefaultFetch returns Fetch config pointing at PrismarineJS minecraft-data.
func DefaultFetch() Fetch {
	return Fetch{
		BaseURL:  "https://raw.githubusercontent.com/PrismarineJS/minecraft-data/master/data",
		Platform: "pc",
		Version:  Version,
		DataDir:  "./data",
	}
}

// LoadFetch loads fetch config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadFetch(path string) (Fetch, error) {
	cfg := DefaultFetch()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every field needed to build source URLs is set.
func (f Fetch) Validate() error {
	if f.BaseURL == "" {
		return fmt.Errorf("base url required")
	}
	if f.Platform == "" {
		return fmt.Errorf("platform required")
	}
	if _, err := version.NewVersion(f.Version); err != nil {
		return fmt.Errorf("invalid version %q: %w", f.Version, err)
	}
	if f.DataDir == "" {
		return fmt.Errorf("data dir required")
	}
	return nil
}

// SourceURL returns where file is downloaded from.
func (f Fetch) SourceURL(file string) string {
	if src, ok := f.Sources[file]; ok && src != "" {
		return src
	}
	return fmt.Sprintf("%s/%s/%s/%s", strings.TrimRight(f.BaseURL, "/"), f.Platform, f.Version, file)
}
