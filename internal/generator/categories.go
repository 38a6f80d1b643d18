package generator

import (
	"fmt"

	"github.com/OCharnyshevich/registrygen/internal/schema"
)

var Blocks = Category[schema.Block]{
	Package: "blocks",
	Kind:    "Block",
	Input:   "blocks.json",
	Parse:   schema.ParseBlocks,
	Source:  func(b schema.Block) string { return b.Namespace },
	ID:      func(b schema.Block) int { return b.BlockStateID },
}

var Biomes = Category[schema.Biome]{
	Package: "biomes",
	Kind:    "Biome",
	Input:   "biomes.json",
	Parse:   schema.ParseBiomes,
	Source:  func(b schema.Biome) string { return b.Name },
	ID:      func(b schema.Biome) int { return b.ID },
}

var Items = Category[schema.Item]{
	Package: "items",
	Kind:    "Item",
	Input:   "items.json",
	Parse:   schema.ParseItems,
	Source:  func(i schema.Item) string { return i.Namespace },
	ID:      func(i schema.Item) int { return i.ID },
	Comment: func(i schema.Item) string {
		if !i.IsBlock {
			return ""
		}
		return fmt.Sprintf("block state %d", i.BlockID)
	},
}

var Particles = Category[schema.Particle]{
	Package: "particles",
	Kind:    "Particle",
	Input:   "particles.json",
	Parse:   schema.ParseParticles,
	Source:  func(p schema.Particle) string { return p.Namespace },
	ID:      func(p schema.Particle) int { return p.ID },
}

var Entities = Category[schema.EntityType]{
	Package: "entities",
	Kind:    "EntityType",
	Input:   "entities.json",
	Parse:   schema.ParseEntities,
	Source:  func(e schema.EntityType) string { return e.Namespace },
	ID:      func(e schema.EntityType) int { return e.ID },
}
