// Package schema decodes the per-category registry JSON dumps.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrMalformedSchema is wrapped by every parse error caused by a document
// that does not have the expected shape.
var ErrMalformedSchema = errors.New("malformed schema")

// BiomeRegistryKey is the key biomes.json nests its entries under.
const BiomeRegistryKey = "minecraft:worldgen/biome"

var (
	blockFields    = []string{"name", "displayName", "transparent", "emitLight", "filterLight", "defaultState", "minStateId", "maxStateId"}
	biomeFields    = []string{"name", "id"}
	entityFields   = []string{"id", "displayName", "name", "width", "height", "type", "category"}
	itemFields     = []string{"id", "displayName", "name", "stackSize"}
	particleFields = []string{"id", "name"}
)

// ParseBlocks decodes blocks.json.
func ParseBlocks(data []byte) ([]Block, error) {
	return parseArray[Block]("blocks", data, blockFields)
}

// ParseEntities decodes entities.json.
func ParseEntities(data []byte) ([]EntityType, error) {
	return parseArray[EntityType]("entities", data, entityFields)
}

// ParseItems decodes items.json. IsBlock and BlockID are left unset.
func ParseItems(data []byte) ([]Item, error) {
	return parseArray[Item]("items", data, itemFields)
}

// ParseParticles decodes particles.json.
func ParseParticles(data []byte) ([]Particle, error) {
	return parseArray[Particle]("particles", data, particleFields)
}

// ParseBiomes reads the biome registry object and returns its value list.
func ParseBiomes(data []byte) ([]Biome, error) {
	if !gjson.ValidBytes(data) {
		return nil, malformed("biomes", "invalid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, malformed("biomes", "expected an object at the top level")
	}

	reg, ok := root.Map()[BiomeRegistryKey]
	if !ok || !reg.IsObject() {
		return nil, malformed("biomes", "missing object %q", BiomeRegistryKey)
	}

	if typ := reg.Get("type"); typ.Type != gjson.String {
		return nil, malformed("biomes", "%q.type must be a string", BiomeRegistryKey)
	}

	value := reg.Get("value")
	if !value.IsArray() {
		return nil, malformed("biomes", "%q.value must be an array", BiomeRegistryKey)
	}
	if err := checkElements("biomes", value, biomeFields); err != nil {
		return nil, err
	}

	var doc BiomeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed("biomes", "%v", err)
	}

	return doc.Registry.Value, nil
}

// parseArray validates that data is an array of objects carrying every
// required field, then decodes it in source order.
func parseArray[T any](category string, data []byte, required []string) ([]T, error) {
	if !gjson.ValidBytes(data) {
		return nil, malformed(category, "invalid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, malformed(category, "expected an array at the top level")
	}
	if err := checkElements(category, root, required); err != nil {
		return nil, err
	}

	records, err := LoadJSON[T](data)
	if err != nil {
		return nil, malformed(category, "%v", err)
	}

	return records, nil
}

func checkElements(category string, arr gjson.Result, required []string) error {
	var err error
	i := 0
	arr.ForEach(func(_, elem gjson.Result) bool {
		if !elem.IsObject() {
			err = malformed(category, "element %d is not an object", i)
			return false
		}
		for _, field := range required {
			v := elem.Get(field)
			if !v.Exists() {
				err = malformed(category, "element %d: missing required field %q", i, field)
				return false
			}
			if v.Type == gjson.Null {
				err = malformed(category, "element %d: required field %q is null", i, field)
				return false
			}
		}
		i++
		return true
	})
	return err
}

func malformed(category, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", category, ErrMalformedSchema, fmt.Sprintf(format, args...))
}

// LoadJSON decodes a JSON array into a slice of T in source order.
func LoadJSON[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return items, nil
}
