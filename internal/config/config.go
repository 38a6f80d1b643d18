package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-version"
)

// Version is the game version whose data the generator reads.
const Version = "1.21"

const (
	// Module is the import path of this module.
	Module = "github.com/OCharnyshevich/registrygen"

	// Provenance is linked from the header of every generated file.
	Provenance = "https://github.com/OCharnyshevich/registrygen"
)

// Config holds the generator configuration.
type Config struct {
	Version string
	DataDir string // inputs are read from DataDir/Version
	OutDir  string // one package directory per category

	// Import paths referenced by generated code.
	RegistryImport  string
	ResourcesImport string
	OutImport       string // import path of OutDir, used by items to reach blocks

	Provenance string
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Version:         Version,
		DataDir:         "./data",
		OutDir:          "./out",
		RegistryImport:  Module + "/pkg/registry",
		ResourcesImport: Module + "/pkg/resources",
		OutImport:       Module + "/out",
		Provenance:      Provenance,
	}
}

// Validate reports the first problem with cfg.
func (c *Config) Validate() error {
	if _, err := version.NewVersion(c.Version); err != nil {
		return fmt.Errorf("invalid game version %q: %w", c.Version, err)
	}
	if c.DataDir == "" {
		return errors.New("data directory is required")
	}
	if c.OutDir == "" {
		return errors.New("output directory is required")
	}
	if c.RegistryImport == "" || c.ResourcesImport == "" || c.OutImport == "" {
		return errors.New("import paths are required")
	}
	return nil
}

// InputDir is the directory holding the JSON dumps for the configured version.
func (c *Config) InputDir() string {
	return filepath.Join(c.DataDir, c.Version)
}
