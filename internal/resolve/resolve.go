// Package resolve links items to the blocks they place.
package resolve

import (
	"github.com/OCharnyshevich/registrygen/internal/schema"
	"github.com/OCharnyshevich/registrygen/pkg/registry"
)

// Items marks every item whose namespace matches a block namespace as a block
// item and records that block's default state ID. If several blocks share a
// namespace the first one in source order is used. items is updated in place
// and returned; blocks is not modified.
func Items(items []schema.Item, blocks []schema.Block) []schema.Item {
	byNamespace := registry.IndexBy(blocks, func(b schema.Block) string { return b.Namespace })

	for i := range items {
		block, ok := byNamespace[items[i].Namespace]
		if !ok {
			continue
		}
		items[i].IsBlock = true
		items[i].BlockID = block.BlockStateID
	}

	return items
}
