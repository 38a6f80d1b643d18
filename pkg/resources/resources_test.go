package resources_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/registrygen/pkg/resources"
)

func TestDecodeJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"data/particles.json": {Data: []byte(`[{"id":0,"name":"angry_villager"}]`)},
	}

	var got []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, resources.DecodeJSON(fsys, "data/particles.json", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "angry_villager", got[0].Name)
}

func TestRead_Missing(t *testing.T) {
	_, err := resources.Read(fstest.MapFS{}, "data/blocks.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "data/blocks.json")
}

func TestDecodeJSON_Invalid(t *testing.T) {
	fsys := fstest.MapFS{"data/items.json": {Data: []byte(`{not json`)}}

	var v []any
	err := resources.DecodeJSON(fsys, "data/items.json", &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode resource data/items.json")
}
