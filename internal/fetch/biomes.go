package fetch

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/OCharnyshevich/registrygen/internal/sanitize"
	"github.com/OCharnyshevich/registrygen/internal/schema"
)

// BiomesFile is rewritten after download when it holds a plain biome list.
const BiomesFile = "biomes.json"

// WrapBiomeList converts a minecraft-data style biome array
// ([{"id":1,"name":"plains",...}]) into the registry document the generator
// reads. Names gain the minecraft namespace. Any other document is returned
// unchanged.
func WrapBiomeList(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsArray() {
		return data, nil
	}

	biomes, err := schema.LoadJSON[schema.Biome](data)
	if err != nil {
		return nil, fmt.Errorf("biome list: %w", err)
	}
	if biomes == nil {
		biomes = []schema.Biome{}
	}
	for i := range biomes {
		if !strings.HasPrefix(biomes[i].Name, sanitize.NamespacePrefix) {
			biomes[i].Name = sanitize.NamespacePrefix + biomes[i].Name
		}
	}

	doc := schema.BiomeDocument{
		Registry: schema.BiomeObjects{Type: schema.BiomeRegistryKey, Value: biomes},
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("biome document: %w", err)
	}
	return out, nil
}

func wrapBiomeFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	out, err := WrapBiomeList(data)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	if string(out) == string(data) {
		return false, nil
	}

	// go-getter may leave a symlink to a local source; replace the link,
	// not its target.
	if err := os.Remove(path); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
