package v1alpha1

import (
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/entities/guide"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/stats"
)

// Catalog

type SearchItemsRequest struct {
	Query string    `json:"query"`
	Slot  gear.Slot `json:"slot,omitempty"`
}

type SearchItemsResponse struct {
	Items []gear.Item `json:"items"`
}

type GetItemRequest struct {
	ItemID string `json:"itemId"`
}

type GetItemResponse struct {
	Item gear.Item `json:"item"`
}

// Presets

type ListPresetsRequest struct{}

type ListPresetsResponse struct {
	Presets []equipment.Build `json:"presets"`
}

type GetPresetRequest struct {
	PresetID string `json:"presetId"`
}

type GetPresetResponse struct {
	Preset equipment.Build `json:"preset"`
	Stats  stats.Summary   `json:"stats"`
}

type SavePresetRequest struct {
	Preset equipment.Build `json:"preset"`
}

type SavePresetResponse struct {
	Preset  equipment.Build `json:"preset"`
	Created bool            `json:"created"`
}

type DeletePresetRequest struct {
	PresetID  string `json:"presetId"`
	Confirmed bool   `json:"confirmed"`
}

type DeletePresetResponse struct{}

type EquipItemRequest struct {
	Build  equipment.Build `json:"build"`
	Slot   gear.Slot       `json:"slot"`
	ItemID string          `json:"itemId,omitempty"`
}

type EquipItemResponse struct {
	Build equipment.Build `json:"build"`
	Stats stats.Summary   `json:"stats"`
}

type SetInventoryItemRequest struct {
	Build  equipment.Build `json:"build"`
	Index  int             `json:"index"`
	ItemID string          `json:"itemId,omitempty"`
}

type SetInventoryItemResponse struct {
	Build equipment.Build `json:"build"`
}

// Simulator

type SimulateRequest struct {
	// Loadout maps equip slots to item IDs
	Loadout map[gear.Slot]string `json:"loadout"`
}

type SimulateResponse struct {
	Gear  equipment.Gear `json:"gear"`
	Stats stats.Summary  `json:"stats"`
}

type SimulatorEquipItemRequest struct {
	Gear   equipment.Gear `json:"gear"`
	Slot   gear.Slot      `json:"slot"`
	ItemID string         `json:"itemId,omitempty"`
}

type SimulatorEquipItemResponse struct {
	Gear  equipment.Gear `json:"gear"`
	Stats stats.Summary  `json:"stats"`
}

// Guides

type ListGuidesRequest struct{}

type ListGuidesResponse struct {
	Guides []guide.Guide `json:"guides"`
}

type GetGuideRequest struct {
	GuideID string `json:"guideId"`
}

type GetGuideResponse struct {
	Guide           guide.Guide     `json:"guide"`
	TableOfContents []guide.Heading `json:"tableOfContents"`
}

type SaveGuideRequest struct {
	Guide guide.Guide `json:"guide"`
}

type SaveGuideResponse struct {
	Guide   guide.Guide `json:"guide"`
	Created bool        `json:"created"`
}

type DeleteGuideRequest struct {
	GuideID   string `json:"guideId"`
	Confirmed bool   `json:"confirmed"`
}

type DeleteGuideResponse struct{}

type ListBossesRequest struct{}

type ListBossesResponse struct {
	Bosses []string `json:"bosses"`
}

type GenerateDraftRequest struct {
	BossName string `json:"bossName"`
	Style    string `json:"style,omitempty"`
}

// DraftStatus values
const (
	DraftStatusSucceeded = "succeeded"
	DraftStatusFailed    = "failed"
)

type GenerateDraftResponse struct {
	Status        string `json:"status"`
	Text          string `json:"text,omitempty"`
	Truncated     bool   `json:"truncated,omitempty"`
	FailureReason string `json:"failureReason,omitempty"`
	FinishReason  string `json:"finishReason,omitempty"`
}
