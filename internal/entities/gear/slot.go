// Package gear defines items, equip slots and bonus profiles.
package gear

import (
	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

// Slot is an equip slot, or the Inventory marker for items that can only be carried.
type Slot string

// Equip slots in display order.
const (
	SlotHead       Slot = "Head"
	SlotAmulet     Slot = "Amulet"
	SlotCape       Slot = "Cape"
	SlotWeapon     Slot = "Weapon"
	SlotShield     Slot = "Shield"
	SlotBody       Slot = "Body"
	SlotLegs       Slot = "Legs"
	SlotHands      Slot = "Hands"
	SlotFeet       Slot = "Feet"
	SlotRing       Slot = "Ring"
	SlotAmmunition Slot = "Ammunition"
	SlotAura       Slot = "Aura"
	SlotPocket     Slot = "Pocket"

	// SlotInventory is not an equip slot. Items tagged with it never go into gear.
	SlotInventory Slot = "Inventory"
)

// EquipSlots is the closed set of equip slots.
var EquipSlots = []Slot{
	SlotHead,
	SlotAmulet,
	SlotCape,
	SlotWeapon,
	SlotShield,
	SlotBody,
	SlotLegs,
	SlotHands,
	SlotFeet,
	SlotRing,
	SlotAmmunition,
	SlotAura,
	SlotPocket,
}

// String returns the display name of the slot
func (s Slot) String() string {
	return string(s)
}

// Equippable reports whether s is one of the 13 equip slots.
func (s Slot) Equippable() bool {
	for _, slot := range EquipSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Valid reports whether s is an equip slot or the Inventory marker.
func (s Slot) Valid() bool {
	return s == SlotInventory || s.Equippable()
}

// ParseSlot converts a display name into a Slot. Matching is exact.
func ParseSlot(name string) (Slot, error) {
	slot := Slot(name)
	if !slot.Valid() {
		return "", errors.InvalidArgumentf("unknown slot %q", name)
	}
	return slot, nil
}
