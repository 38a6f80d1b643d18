package schema

// Block is one entry of blocks.json. Blocks are looked up by their default
// state ID.
type Block struct {
	Namespace     string `json:"name"`
	Name          string `json:"displayName"`
	IsTransparent bool   `json:"transparent"`
	LightEmitted  int    `json:"emitLight"`
	LightFiltered int    `json:"filterLight"`
	BlockStateID  int    `json:"defaultState"`
	MinState      int    `json:"minStateId"`
	MaxState      int    `json:"maxStateId"`
}

// Biome is one entry of the worldgen biome registry.
type Biome struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// BiomeDocument is the top level shape of biomes.json.
type BiomeDocument struct {
	Registry BiomeObjects `json:"minecraft:worldgen/biome"`
}

// BiomeObjects is the registry object holding the biome entries.
type BiomeObjects struct {
	Type  string  `json:"type"`
	Value []Biome `json:"value"`
}

// EntityType is one entry of entities.json.
type EntityType struct {
	ID        int     `json:"id"`
	Name      string  `json:"displayName"`
	Namespace string  `json:"name"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Type      string  `json:"type"`
	Category  string  `json:"category"`
}

// Item is one entry of items.json. IsBlock and BlockID are not part of the
// input; they are filled in by the resolve package. BlockID is only
// meaningful when IsBlock is set.
type Item struct {
	ID        int    `json:"id"`
	Name      string `json:"displayName"`
	Namespace string `json:"name"`
	StackSize int    `json:"stackSize"`
	IsBlock   bool   `json:"-"`
	BlockID   int    `json:"-"`
}

// Particle is one entry of particles.json.
type Particle struct {
	ID        int    `json:"id"`
	Namespace string `json:"name"`
}
