package simulator

import (
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/stats"
)

// SimulateInput defines the request for summarising a loadout
type SimulateInput struct {
	// Loadout maps equip slots to catalog item IDs
	Loadout map[gear.Slot]string
}

// SimulateOutput defines the response for summarising a loadout
type SimulateOutput struct {
	Gear  equipment.Gear
	Stats stats.Summary
}

// EquipItemInput defines the request for changing one slot of simulated gear
type EquipItemInput struct {
	Gear equipment.Gear
	Slot gear.Slot
	// ItemID empty clears the slot
	ItemID string
}

// EquipItemOutput defines the response for changing one slot of simulated gear
type EquipItemOutput struct {
	Gear  equipment.Gear
	Stats stats.Summary
}
