package generator_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/registrygen/internal/config"
	"github.com/OCharnyshevich/registrygen/internal/generator"
	"github.com/OCharnyshevich/registrygen/internal/schema"
	"github.com/OCharnyshevich/registrygen/internal/storage"
)

var outputs = []string{
	filepath.Join("blocks", "blocks.go"),
	filepath.Join("biomes", "biomes.go"),
	filepath.Join("items", "items.go"),
	filepath.Join("particles", "particles.go"),
	filepath.Join("entities", "entities.go"),
}

// copyFixtures copies testdata into a fresh data dir, leaving out skip, and
// returns a config that reads from it.
func copyFixtures(t *testing.T, skip ...string) *config.Config {
	t.Helper()

	dataDir := t.TempDir()
	inDir := filepath.Join(dataDir, config.Version)
	require.NoError(t, os.MkdirAll(inDir, 0o755))

	for _, name := range config.Files {
		if contains(skip, name) {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(inDir, name), fixture(t, name), 0o644))
	}

	cfg := config.Default()
	cfg.DataDir = dataDir
	cfg.OutDir = filepath.Join(t.TempDir(), "out")
	return cfg
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_GeneratesAllCategoriesInOrder(t *testing.T) {
	cfg := copyFixtures(t)

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	require.NoError(t, generator.Run(cfg, log))

	for _, rel := range outputs {
		src, err := os.ReadFile(filepath.Join(cfg.OutDir, rel))
		require.NoError(t, err, rel)
		parseGenerated(t, src)
	}

	var order []string
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		for _, name := range []string{"blocks", "biomes", "items", "particles", "entities"} {
			if strings.Contains(line, `msg="generated `+name+`"`) {
				order = append(order, name)
			}
		}
	}
	assert.Equal(t, []string{"blocks", "biomes", "items", "particles", "entities"}, order)
}

func TestRun_LinksItemsToBlocks(t *testing.T) {
	cfg := copyFixtures(t)
	require.NoError(t, generator.Run(cfg, discardLogger()))

	src, err := os.ReadFile(filepath.Join(cfg.OutDir, "items", "items.go"))
	require.NoError(t, err)

	assert.Equal(t, []constDecl{
		{Name: "STONE", Value: 1, Comment: "block state 1"},
		{Name: "OAK_LOG", Value: 110, Comment: "block state 131"},
		{Name: "DIAMOND", Value: 800},
		{Name: "DIAMOND_SWORD", Value: 908},
	}, constsOf(t, parseGenerated(t, src)))
}

func TestRun_Idempotent(t *testing.T) {
	cfg := copyFixtures(t)

	require.NoError(t, generator.Run(cfg, discardLogger()))
	first := map[string][]byte{}
	for _, rel := range outputs {
		data, err := os.ReadFile(filepath.Join(cfg.OutDir, rel))
		require.NoError(t, err)
		first[rel] = data
	}

	require.NoError(t, generator.Run(cfg, discardLogger()))
	for _, rel := range outputs {
		data, err := os.ReadFile(filepath.Join(cfg.OutDir, rel))
		require.NoError(t, err)
		assert.Equal(t, first[rel], data, rel)
	}
}

func TestRun_OverwritesExistingOutput(t *testing.T) {
	cfg := copyFixtures(t)
	stale := filepath.Join(cfg.OutDir, "biomes", "biomes.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("package stale\n"), 0o644))

	require.NoError(t, generator.Run(cfg, discardLogger()))

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "// Code generated by registrygen."))
}

func TestRun_MissingInputAbortsRun(t *testing.T) {
	cfg := copyFixtures(t, "particles.json")

	err := generator.Run(cfg, discardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrMissingInputFile)
	assert.Contains(t, err.Error(), "generate particles")

	// categories before particles were written, nothing from particles on
	for _, rel := range outputs[:3] {
		assert.FileExists(t, filepath.Join(cfg.OutDir, rel))
	}
	for _, rel := range outputs[3:] {
		assert.NoFileExists(t, filepath.Join(cfg.OutDir, rel))
	}
}

func TestRun_MalformedBlocksAbortsBeforeAnyOutput(t *testing.T) {
	cfg := copyFixtures(t)
	blocksPath := filepath.Join(cfg.InputDir(), "blocks.json")
	require.NoError(t, os.WriteFile(blocksPath, []byte(`{"blocks":[]}`), 0o644))

	err := generator.Run(cfg, discardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrMalformedSchema)

	for _, rel := range outputs {
		assert.NoFileExists(t, filepath.Join(cfg.OutDir, rel))
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := copyFixtures(t)
	cfg.Version = "not-a-version"

	err := generator.Run(cfg, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")
}
