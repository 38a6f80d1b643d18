// Package generator turns registry JSON dumps into Go packages that declare
// one constant per registry entry.
package generator

import (
	"fmt"
	"log/slog"

	"github.com/OCharnyshevich/registrygen/internal/config"
	"github.com/OCharnyshevich/registrygen/internal/resolve"
	"github.com/OCharnyshevich/registrygen/internal/schema"
	"github.com/OCharnyshevich/registrygen/internal/storage"
)

// Run regenerates every category in order: blocks, biomes, items,
// particles, entities. The first failure aborts the run.
func Run(cfg *config.Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	g, err := New(cfg)
	if err != nil {
		return err
	}

	st, err := storage.New(cfg.InputDir(), cfg.OutDir, log)
	if err != nil {
		return err
	}

	// items are linked against the parsed blocks
	var blockList []schema.Block

	steps := []struct {
		name string
		run  func() error
	}{
		{Blocks.Package, func() error {
			blockList, err = parse(st, Blocks)
			if err != nil {
				return err
			}
			return generate(g, st, log, Blocks, blockList)
		}},
		{Biomes.Package, func() error {
			return parseAndGenerate(g, st, log, Biomes)
		}},
		{Items.Package, func() error {
			items, err := parse(st, Items)
			if err != nil {
				return err
			}
			return generate(g, st, log, Items, resolve.Items(items, blockList))
		}},
		{Particles.Package, func() error {
			return parseAndGenerate(g, st, log, Particles)
		}},
		{Entities.Package, func() error {
			return parseAndGenerate(g, st, log, Entities)
		}},
	}

	for _, s := range steps {
		if err := s.run(); err != nil {
			return fmt.Errorf("generate %s: %w", s.name, err)
		}
	}

	return nil
}

func parse[R any](st *storage.Storage, c Category[R]) ([]R, error) {
	raw, err := st.ReadInput(c.Input)
	if err != nil {
		return nil, err
	}

	records, err := c.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.Input, err)
	}
	return records, nil
}

func generate[R any](g *Generator, st *storage.Storage, log *slog.Logger, c Category[R], records []R) error {
	src, err := Emit(g, c, records)
	if err != nil {
		return err
	}

	path, err := st.WriteOutput(c.Output(), src)
	if err != nil {
		return err
	}

	log.Info("generated "+c.Package, "records", len(records), "path", path)
	return nil
}

func parseAndGenerate[R any](g *Generator, st *storage.Storage, log *slog.Logger, c Category[R]) error {
	records, err := parse(st, c)
	if err != nil {
		return err
	}
	return generate(g, st, log, c, records)
}
