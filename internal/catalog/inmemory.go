package catalog

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

// InMemoryConfig configures the in-process catalog
type InMemoryConfig struct {
	// Items replaces the built-in seed when non-nil
	Items []gear.Item
	// SearchLatency and GetLatency simulate a remote source. Zero disables.
	SearchLatency time.Duration
	GetLatency    time.Duration
}

type inMemory struct {
	items         []gear.Item
	byID          map[string]int
	searchLatency time.Duration
	getLatency    time.Duration
}

// NewInMemory creates a catalog held in process memory. The item list is copied
// and never changes afterwards, so no locking is needed.
func NewInMemory(cfg *InMemoryConfig) (Catalog, error) {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}

	items := cfg.Items
	if items == nil {
		seed, err := LoadSeed()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load seed catalog")
		}
		items = seed
	} else if err := ValidateItems(items); err != nil {
		return nil, err
	}

	c := &inMemory{
		items:         slices.Clone(items),
		byID:          make(map[string]int, len(items)),
		searchLatency: cfg.SearchLatency,
		getLatency:    cfg.GetLatency,
	}
	for i, item := range c.items {
		c.byID[item.ID] = i
	}

	slog.Debug("In-memory catalog ready", "items", len(c.items))
	return c, nil
}

// Search filters the catalog after the configured latency
func (c *inMemory) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := wait(ctx, c.searchLatency); err != nil {
		return nil, err
	}

	return &SearchOutput{Items: Filter(c.items, input)}, nil
}

// Get looks up an item by id after the configured latency
func (c *inMemory) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}
	if err := wait(ctx, c.getLatency); err != nil {
		return nil, err
	}

	idx, ok := c.byID[input.ID]
	if !ok {
		return nil, errors.NotFoundf("item %s not found", input.ID)
	}
	return &GetOutput{Item: c.items[idx]}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return errors.FromContext(err, "catalog request abandoned")
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return errors.FromContext(ctx.Err(), "catalog request abandoned")
	}
}
