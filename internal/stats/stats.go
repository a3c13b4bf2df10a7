// Package stats reduces equipped gear into a combat stat summary.
//
// The summary is derived data: it is never stored and is recomputed from the
// gear assignment every time it is read.
package stats

import (
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
)

// Summary is the element-wise sum of every equipped item's bonuses
type Summary struct {
	TotalAttack        gear.CombatStyles `json:"totalAttack"`
	TotalStrength      int               `json:"totalStrength"`
	TotalMagicDamage   int               `json:"totalMagicDamage"`
	TotalRangeStrength int               `json:"totalRangeStrength"`
	TotalDefence       gear.CombatStyles `json:"totalDefence"`
	TotalArmour        int               `json:"totalArmour"`
	TotalLifePoints    int               `json:"totalLifePoints"`
	TotalPrayer        int               `json:"totalPrayer"`
}

// Aggregate sums the bonuses of every item in g. Values are not clamped and
// negative bonuses reduce the totals. The result does not depend on map order.
func Aggregate(g equipment.Gear) Summary {
	var total gear.Bonuses
	for _, item := range g {
		total = total.Add(item.Bonuses)
	}
	return FromBonuses(total)
}

// ForBuild aggregates the gear of b. Inventory items never contribute.
func ForBuild(b equipment.Build) Summary {
	return Aggregate(b.Gear)
}

// FromBonuses maps a bonus profile onto summary fields
func FromBonuses(b gear.Bonuses) Summary {
	return Summary{
		TotalAttack:        b.Attack,
		TotalStrength:      b.Strength,
		TotalMagicDamage:   b.MagicDamage,
		TotalRangeStrength: b.RangeStrength,
		TotalDefence:       b.Defence,
		TotalArmour:        b.Armour,
		TotalLifePoints:    b.LifePoints,
		TotalPrayer:        b.Prayer,
	}
}

// IsZero reports whether every total is zero
func (s Summary) IsZero() bool {
	return s == Summary{}
}
