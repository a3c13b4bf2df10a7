package preset

import (
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/stats"
)

// EquipItemInput defines the request for changing one gear slot of a preset
type EquipItemInput struct {
	Build equipment.Build
	Slot  gear.Slot
	// ItemID is the catalog item to place in Slot. Empty clears the slot.
	ItemID string
}

// EquipItemOutput defines the response for changing one gear slot
type EquipItemOutput struct {
	Build equipment.Build
	Stats stats.Summary
}

// SetInventoryItemInput defines the request for changing one inventory cell
type SetInventoryItemInput struct {
	Build equipment.Build
	Index int
	// ItemID is the catalog item to place in the cell. Empty empties the cell.
	ItemID string
}

// SetInventoryItemOutput defines the response for changing one inventory cell
type SetInventoryItemOutput struct {
	Build equipment.Build
}

// SavePresetInput defines the request for saving a preset
type SavePresetInput struct {
	Preset equipment.Build
}

// SavePresetOutput defines the response for saving a preset
type SavePresetOutput struct {
	Preset  equipment.Build
	Created bool
}

// ListPresetsInput defines the request for listing presets
type ListPresetsInput struct{}

// ListPresetsOutput defines the response for listing presets
type ListPresetsOutput struct {
	Presets []equipment.Build
}

// GetPresetInput defines the request for loading a preset
type GetPresetInput struct {
	PresetID string
}

// GetPresetOutput defines the response for loading a preset
type GetPresetOutput struct {
	Preset equipment.Build
	Stats  stats.Summary
}

// DeletePresetInput defines the request for deleting a preset
type DeletePresetInput struct {
	PresetID string
	// Confirmed must be true; deletes are never applied implicitly.
	Confirmed bool
}

// DeletePresetOutput defines the response for deleting a preset
type DeletePresetOutput struct{}
