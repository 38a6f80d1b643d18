// Package fetch downloads the registry JSON dumps a generator run reads.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/registrygen/internal/config"
)

// GetFileFunc downloads a single file from src to dst.
type GetFileFunc func(ctx context.Context, dst, src string) error

// GetFile fetches with go-getter, which understands http(s), git, s3, gcs
// and local paths.
func GetFile(ctx context.Context, dst, src string) error {
	return get.GetFile(dst, src, get.WithContext(ctx))
}

type Fetcher struct {
	cfg config.Fetch
	log *slog.Logger
	get GetFileFunc
}

// New creates a Fetcher. A nil getFile uses GetFile.
func New(cfg config.Fetch, log *slog.Logger, getFile GetFileFunc) *Fetcher {
	if getFile == nil {
		getFile = GetFile
	}
	return &Fetcher{cfg: cfg, log: log, get: getFile}
}

// Dir is where the files for the configured version are stored.
func (f *Fetcher) Dir() string {
	return filepath.Join(f.cfg.DataDir, f.cfg.Version)
}

// Fetch downloads every category file into Dir, replacing what was there.
// Files are fetched concurrently; the first failure cancels the rest. A
// biome list is converted into the registry document afterwards.
func (f *Fetcher) Fetch(ctx context.Context) error {
	if err := f.cfg.Validate(); err != nil {
		return fmt.Errorf("fetch config: %w", err)
	}

	dir := f.Dir()
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	f.log.Info("start downloading", "version", f.cfg.Version, "dir", dir)

	var done atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range config.Files {
		name := name
		src := f.cfg.SourceURL(name)
		dst := filepath.Join(dir, name)
		g.Go(func() error {
			if err := f.get(ctx, dst, src); err != nil {
				return fmt.Errorf("download %s: %w", src, err)
			}
			f.log.Debug("downloaded", "file", name, "progress", done.Inc())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	wrapped, err := wrapBiomeFile(filepath.Join(dir, BiomesFile))
	if err != nil {
		return fmt.Errorf("convert biomes: %w", err)
	}
	if wrapped {
		f.log.Info("converted biome list to registry document", "file", BiomesFile)
	}

	f.log.Info("done downloading", "files", done.Load(), "dir", dir)
	return nil
}
