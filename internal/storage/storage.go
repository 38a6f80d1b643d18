package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrMissingInputFile is returned when a category dump does not exist.
var ErrMissingInputFile = errors.New("missing input file")

// Storage reads generator inputs and writes generated files.
type Storage struct {
	inDir  string
	outDir string
	log    *slog.Logger
}

// New creates a Storage reading from inDir and writing under outDir,
// creating outDir if needed.
func New(inDir, outDir string, log *slog.Logger) (*Storage, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", outDir, err)
	}
	return &Storage{inDir: inDir, outDir: outDir, log: log}, nil
}

// ReadInput returns the contents of inDir/name.
func (s *Storage) ReadInput(name string) ([]byte, error) {
	path := filepath.Join(s.inDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInputFile, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s.log.Debug("read input", "path", path, "bytes", len(data))
	return data, nil
}

// WriteOutput atomically replaces outDir/rel with data and returns the
// written path.
func (s *Storage) WriteOutput(rel string, data []byte) (string, error) {
	path := filepath.Join(s.outDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", filepath.Dir(path), err)
	}
	if err := atomicWrite(path, data); err != nil {
		return "", err
	}
	return path, nil
}

func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
