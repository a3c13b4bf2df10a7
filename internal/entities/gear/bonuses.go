package gear

// CombatStyles holds one value per combat style. Used for both attack and defence.
type CombatStyles struct {
	Stab  int `json:"stab" yaml:"stab"`
	Slash int `json:"slash" yaml:"slash"`
	Crush int `json:"crush" yaml:"crush"`
	Magic int `json:"magic" yaml:"magic"`
	Range int `json:"range" yaml:"range"`
}

// Add returns the element-wise sum of c and o
func (c CombatStyles) Add(o CombatStyles) CombatStyles {
	return CombatStyles{
		Stab:  c.Stab + o.Stab,
		Slash: c.Slash + o.Slash,
		Crush: c.Crush + o.Crush,
		Magic: c.Magic + o.Magic,
		Range: c.Range + o.Range,
	}
}

// Bonuses is an item's bonus profile. Every field is mandatory and zero by default;
// negative values are penalties.
type Bonuses struct {
	Attack        CombatStyles `json:"attack" yaml:"attack"`
	Strength      int          `json:"strength" yaml:"strength"`
	MagicDamage   int          `json:"magicDamage" yaml:"magicDamage"` // percentage points
	RangeStrength int          `json:"rangeStrength" yaml:"rangeStrength"`
	Defence       CombatStyles `json:"defence" yaml:"defence"`
	Armour        int          `json:"armour" yaml:"armour"`
	LifePoints    int          `json:"lifePoints" yaml:"lifePoints"`
	Prayer        int          `json:"prayer" yaml:"prayer"`
}

// Add returns the field-by-field sum of b and o. No clamping.
func (b Bonuses) Add(o Bonuses) Bonuses {
	return Bonuses{
		Attack:        b.Attack.Add(o.Attack),
		Strength:      b.Strength + o.Strength,
		MagicDamage:   b.MagicDamage + o.MagicDamage,
		RangeStrength: b.RangeStrength + o.RangeStrength,
		Defence:       b.Defence.Add(o.Defence),
		Armour:        b.Armour + o.Armour,
		LifePoints:    b.LifePoints + o.LifePoints,
		Prayer:        b.Prayer + o.Prayer,
	}
}

// IsZero reports whether every field is zero
func (b Bonuses) IsZero() bool {
	return b == Bonuses{}
}
