package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/pvm-hub/internal/catalog"
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/entities/guide"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
)

var (
	seedOnce  sync.Once
	seedItems map[string]gear.Item
)

// Item returns a copy of a seed catalog item. It panics on an unknown id so a
// typo fails the test loudly.
func Item(id string) gear.Item {
	seedOnce.Do(func() {
		items, err := catalog.LoadSeed()
		if err != nil {
			panic(fmt.Sprintf("testutils: loading seed catalog: %v", err))
		}
		seedItems = make(map[string]gear.Item, len(items))
		for _, item := range items {
			seedItems[item.ID] = item
		}
	})

	item, ok := seedItems[id]
	if !ok {
		panic(fmt.Sprintf("testutils: no seed item %q", id))
	}
	return item
}

// MeleePreset returns an unsaved dual-wield melee build with food in the first cells
func MeleePreset() equipment.Build {
	b := equipment.NewBuild()
	b.Name = "Telos melee"
	b.Description = "Dual drygores with masterwork"

	for slot, id := range map[gear.Slot]string{
		gear.SlotWeapon: "drygore_mains_longsword",
		gear.SlotShield: "drygore_off_longsword",
		gear.SlotHead:   "masterwork_helm",
		gear.SlotBody:   "masterwork_platebody",
		gear.SlotLegs:   "masterwork_platelegs",
		gear.SlotFeet:   "laceration_boots",
	} {
		item := Item(id)
		b = b.SetSlot(slot, &item)
	}

	food := Item("rocktail")
	for i := 0; i < 4; i++ {
		b, _ = b.SetInventoryCell(i, &food)
	}
	restore := Item("super_restore_4")
	b, _ = b.SetInventoryCell(27, &restore)
	return b
}

// TelosGuide returns an unsaved guide with two sections
func TelosGuide() guide.Guide {
	return guide.Guide{
		Title:   "Telos 100% enrage",
		Boss:    "Telos",
		Content: "## Recommended Gear\nDrygores.\n## Example Rotation\nBerserk first.\n",
	}
}
