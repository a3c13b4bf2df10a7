// Package preset implements the preset orchestrator: editing gear and
// inventory of a build and managing saved presets
package preset

//go:generate mockgen -destination=mock/mock_service.go -package=presetmock github.com/KirkDiggler/pvm-hub/internal/orchestrators/preset Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/pvm-hub/internal/catalog"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/repositories/presets"
	"github.com/KirkDiggler/pvm-hub/internal/stats"
)

// Service defines the interface for preset operations
type Service interface {
	// EquipItem places a catalog item in a gear slot, or clears the slot
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	// SetInventoryItem places a catalog item in an inventory cell, or empties it
	SetInventoryItem(ctx context.Context, input *SetInventoryItemInput) (*SetInventoryItemOutput, error)

	SavePreset(ctx context.Context, input *SavePresetInput) (*SavePresetOutput, error)
	ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error)
	GetPreset(ctx context.Context, input *GetPresetInput) (*GetPresetOutput, error)
	DeletePreset(ctx context.Context, input *DeletePresetInput) (*DeletePresetOutput, error)
}

// Config holds the dependencies for the preset orchestrator
type Config struct {
	Catalog    catalog.Catalog
	PresetRepo presets.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.PresetRepo == nil {
		vb.RequiredField("PresetRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog    catalog.Catalog
	presetRepo presets.Repository
}

// NewOrchestrator creates a new preset orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog:    cfg.Catalog,
		presetRepo: cfg.PresetRepo,
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

	build := input.Build.SetSlot(input.Slot, item)

	return &EquipItemOutput{
		Build: build,
		Stats: stats.ForBuild(build),
	}, nil
}

func (o *orchestrator) SetInventoryItem(ctx context.Context, input *SetInventoryItemInput) (*SetInventoryItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Index < 0 || input.Index >= equipment.InventorySize {
		return nil, errors.IndexOutOfRange(input.Index, equipment.InventorySize)
	}

	item, err := catalog.Resolve(ctx, o.catalog, input.ItemID)
	if err != nil {
		return nil, err
	}

	build, err := input.Build.SetInventoryCell(input.Index, item)
	if err != nil {
		return nil, err
	}

	return &SetInventoryItemOutput{Build: build}, nil
}

func (o *orchestrator) SavePreset(ctx context.Context, input *SavePresetInput) (*SavePresetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Preset.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	preset := input.Preset.Clone()
	preset.Name = strings.TrimSpace(preset.Name)

	out, err := o.presetRepo.Save(ctx, presets.SaveInput{Preset: preset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save preset")
	}

	slog.InfoContext(ctx, "Preset saved",
		"preset_id", out.Preset.ID,
		"name", out.Preset.Name,
		"created", out.Created,
		"gear", len(out.Preset.Gear),
		"inventory", out.Preset.InventoryCount(),
	)

	return &SavePresetOutput{
		Preset:  out.Preset,
		Created: out.Created,
	}, nil
}

func (o *orchestrator) ListPresets(ctx context.Context, _ *ListPresetsInput) (*ListPresetsOutput, error) {
	out, err := o.presetRepo.List(ctx, presets.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list presets")
	}

	return &ListPresetsOutput{Presets: out.Presets}, nil
}

func (o *orchestrator) GetPreset(ctx context.Context, input *GetPresetInput) (*GetPresetOutput, error) {
	if input == nil || input.PresetID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}

	out, err := o.presetRepo.Get(ctx, presets.GetInput{ID: input.PresetID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get preset %s", input.PresetID)
	}

	return &GetPresetOutput{
		Preset: out.Preset,
		Stats:  stats.ForBuild(out.Preset),
	}, nil
}

func (o *orchestrator) DeletePreset(ctx context.Context, input *DeletePresetInput) (*DeletePresetOutput, error) {
	if input == nil || input.PresetID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}
	if !input.Confirmed {
		return nil, errors.FailedPrecondition("delete must be confirmed").
			WithMeta("preset_id", input.PresetID)
	}

	if _, err := o.presetRepo.Delete(ctx, presets.DeleteInput{ID: input.PresetID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete preset %s", input.PresetID)
	}

	slog.InfoContext(ctx, "Preset deleted", "preset_id", input.PresetID)

	return &DeletePresetOutput{}, nil
}
