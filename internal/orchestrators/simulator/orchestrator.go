// Package simulator implements the gear simulator: gear-only builds whose
// combat stats are recomputed on every change
package simulator

//go:generate mockgen -destination=mock/mock_service.go -package=simulatormock github.com/KirkDiggler/pvm-hub/internal/orchestrators/simulator Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pvm-hub/internal/catalog"
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/stats"
)

// Service defines the interface for simulator operations
type Service interface {
	// Simulate resolves every item of a loadout and returns the combined stats
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)
	// EquipItem changes one slot and returns the new gear with its stats
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
}

// Config holds the dependencies for the simulator orchestrator
type Config struct {
	Catalog catalog.Catalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog catalog.Catalog
}

// NewOrchestrator creates a new simulator orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{catalog: cfg.Catalog}, nil
}

func (o *orchestrator) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	for slot := range input.Loadout {
		if !slot.Equippable() {
			return nil, errors.InvalidArgumentf("%q is not an equip slot", slot)
		}
	}

	build := equipment.NewBuild()
	for _, slot := range gear.EquipSlots {
		itemID, ok := input.Loadout[slot]
		if !ok || itemID == "" {
			continue
		}

		item, err := catalog.Resolve(ctx, o.catalog, itemID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve %s slot", slot)
		}
		build = build.SetSlot(slot, item)
	}

	summary := stats.ForBuild(build)
	slog.DebugContext(ctx, "Loadout simulated",
		"items", len(build.Gear),
		"strength", summary.TotalStrength,
		"armour", summary.TotalArmour,
	)

	return &SimulateOutput{
		Gear:  build.Gear,
		Stats: summary,
	}, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.Equippable() {
		return nil, errors.InvalidArgumentf("%q is not an equip slot", input.Slot)
	}

	item, err := catalog.Resolve(ctx, o.catalog, input.ItemID)
	if err != nil {
		return nil, err
	}

	build := equipment.NewBuild()
	build.Gear = input.Gear
	build = build.SetSlot(input.Slot, item)

	return &EquipItemOutput{
		Gear:  build.Gear,
		Stats: stats.ForBuild(build),
	}, nil
}
