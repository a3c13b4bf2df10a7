// Package equipment models a build: the gear assignment (one item per equip slot)
// and a fixed-size inventory. Every mutation returns a new Build and leaves the
// receiver untouched.
package equipment

import (
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

// InventorySize is the number of inventory cells in every build
const InventorySize = 28

// Gear maps an equip slot to the item occupying it. A missing key is an empty slot.
type Gear map[gear.Slot]gear.Item

// Clone returns an independent copy of g
func (g Gear) Clone() Gear {
	out := make(Gear, len(g))
	for slot, item := range g {
		out[slot] = item
	}
	return out
}

// Inventory is a fixed-length sequence of optional items. Index identity matters;
// the same item may appear in several cells.
//
// Encoded as a JSON array. Shorter arrays decode with the remaining cells empty and
// extra elements are dropped, which lets older records load without migration.
type Inventory [InventorySize]*gear.Item

// Count returns the number of occupied cells
func (inv Inventory) Count() int {
	n := 0
	for _, cell := range inv {
		if cell != nil {
			n++
		}
	}
	return n
}

// Build is a named combination of gear and inventory. Presets use both; the gear
// simulator only uses Gear.
type Build struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Gear        Gear      `json:"gear"`
	Inventory   Inventory `json:"inventory"`
}

// NewBuild returns an empty build with blank metadata
func NewBuild() Build {
	return Build{Gear: Gear{}}
}

// Clone returns a deep copy of b
func (b Build) Clone() Build {
	out := b
	out.Gear = b.Gear.Clone()
	for i, cell := range b.Inventory {
		if cell != nil {
			item := *cell
			out.Inventory[i] = &item
		}
	}
	return out
}

// Item returns the item in slot, if any
func (b Build) Item(slot gear.Slot) (gear.Item, bool) {
	item, ok := b.Gear[slot]
	return item, ok
}

// SetSlot returns a copy of b where slot holds item, or is cleared when item is nil.
// The item's declared slot is not checked against the target slot.
func (b Build) SetSlot(slot gear.Slot, item *gear.Item) Build {
	out := b
	out.Gear = b.Gear.Clone()
	if item == nil {
		delete(out.Gear, slot)
		return out
	}
	out.Gear[slot] = *item
	return out
}

// SetInventoryCell returns a copy of b with cell index replaced by item, or emptied
// when item is nil. index must be in [0, InventorySize).
func (b Build) SetInventoryCell(index int, item *gear.Item) (Build, error) {
	if index < 0 || index >= InventorySize {
		return b, errors.IndexOutOfRange(index, InventorySize)
	}

	out := b
	if item == nil {
		out.Inventory[index] = nil
		return out, nil
	}
	cell := *item
	out.Inventory[index] = &cell
	return out, nil
}

// InventoryCell returns the item at index, if any
func (b Build) InventoryCell(index int) (gear.Item, bool, error) {
	if index < 0 || index >= InventorySize {
		return gear.Item{}, false, errors.IndexOutOfRange(index, InventorySize)
	}
	cell := b.Inventory[index]
	if cell == nil {
		return gear.Item{}, false, nil
	}
	return *cell, true, nil
}

// InventoryCount returns the number of occupied inventory cells
func (b Build) InventoryCount() int {
	return b.Inventory.Count()
}
