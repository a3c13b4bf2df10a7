package gear

// Item is a catalog entry. Items are plain values: copying one never aliases catalog state.
type Item struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Slot    Slot    `json:"slot" yaml:"slot"`
	Bonuses Bonuses `json:"bonuses" yaml:"bonuses"`
	IconURL string  `json:"iconUrl" yaml:"iconUrl"`
}

// Equippable reports whether the item declares an equip slot
func (i Item) Equippable() bool {
	return i.Slot.Equippable()
}
