// Package catalog provides searchable access to the item catalog
package catalog

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/KirkDiggler/pvm-hub/internal/catalog Catalog

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

// Catalog is the item source consumed by search boxes and the build editors
type Catalog interface {
	// Search returns items whose name contains the query, case-insensitively.
	// An empty query matches everything. Results keep catalog order.
	// Returns errors.InvalidArgument for an unknown slot filter
	// Returns errors.Unavailable when the backing source cannot be reached
	Search(ctx context.Context, input SearchInput) (*SearchOutput, error)

	// Get returns a single item by id
	// Returns errors.NotFound if no item has that id
	// Returns errors.Unavailable when the backing source cannot be reached
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// SearchInput defines the input for searching the catalog
type SearchInput struct {
	Query string
	// Slot restricts results to items declaring that slot. Empty means no filter.
	// SlotInventory keeps only carry-only items.
	Slot gear.Slot
}

// SearchOutput defines the output for searching the catalog
type SearchOutput struct {
	Items []gear.Item
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item gear.Item
}

// Validate checks the slot filter
func (in SearchInput) Validate() error {
	if in.Slot != "" && !in.Slot.Valid() {
		return errors.InvalidArgumentf("unknown slot filter %q", in.Slot)
	}
	return nil
}

// Filter applies the search rules to items. The returned slice is newly allocated.
func Filter(items []gear.Item, input SearchInput) []gear.Item {
	query := strings.ToLower(strings.TrimSpace(input.Query))
	return lo.Filter(items, func(item gear.Item, _ int) bool {
		if input.Slot != "" && item.Slot != input.Slot {
			return false
		}
		return query == "" || strings.Contains(strings.ToLower(item.Name), query)
	})
}

// Resolve looks up the item that should occupy a slot or inventory cell. An
// empty id resolves to nil, meaning the target is cleared.
func Resolve(ctx context.Context, c Catalog, id string) (*gear.Item, error) {
	if id == "" {
		return nil, nil
	}

	out, err := c.Get(ctx, GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve item %s", id)
	}

	item := out.Item
	return &item, nil
}
