package equipment_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

type EquipmentTestSuite struct {
	suite.Suite
	mace   gear.Item
	wand   gear.Item
	helm   gear.Item
	shark  gear.Item
	offhnd gear.Item
}

func TestEquipmentTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTestSuite))
}

func (s *EquipmentTestSuite) SetupTest() {
	s.mace = gear.Item{ID: "drygore_mace", Name: "Drygore mace", Slot: gear.SlotWeapon,
		Bonuses: gear.Bonuses{Strength: 65, Attack: gear.CombatStyles{Crush: 130}}}
	s.wand = gear.Item{ID: "seismic_wand", Name: "Seismic wand", Slot: gear.SlotWeapon,
		Bonuses: gear.Bonuses{MagicDamage: 40, Attack: gear.CombatStyles{Magic: 90}}}
	s.helm = gear.Item{ID: "masterwork_helm", Name: "Masterwork helm", Slot: gear.SlotHead,
		Bonuses: gear.Bonuses{Armour: 65, Defence: gear.CombatStyles{Stab: 10}}}
	s.shark = gear.Item{ID: "rocktail", Name: "Rocktail", Slot: gear.SlotInventory,
		Bonuses: gear.Bonuses{LifePoints: 2300}}
	s.offhnd = gear.Item{ID: "drygore_off", Name: "Drygore off-hand mace", Slot: gear.SlotShield}
}

func (s *EquipmentTestSuite) TestNewBuildIsEmpty() {
	b := equipment.NewBuild()

	s.Empty(b.ID)
	s.Empty(b.Name)
	s.Empty(b.Description)
	s.Empty(b.Gear)
	s.Equal(0, b.Inventory.Count())
	s.Len(b.Inventory, equipment.InventorySize)
}

func (s *EquipmentTestSuite) TestSetSlotReplaces() {
	b := equipment.NewBuild().SetSlot(gear.SlotHead, &s.helm)
	b = b.SetSlot(gear.SlotWeapon, &s.mace)
	b = b.SetSlot(gear.SlotWeapon, &s.wand)

	weapon, ok := b.Item(gear.SlotWeapon)
	s.True(ok)
	s.Equal(s.wand, weapon)

	head, ok := b.Item(gear.SlotHead)
	s.True(ok)
	s.Equal(s.helm, head)
	s.Len(b.Gear, 2)
}

func (s *EquipmentTestSuite) TestSetSlotClearRemovesKey() {
	b := equipment.NewBuild().SetSlot(gear.SlotWeapon, &s.mace)
	cleared := b.SetSlot(gear.SlotWeapon, nil)

	_, ok := cleared.Item(gear.SlotWeapon)
	s.False(ok)
	s.NotContains(cleared.Gear, gear.SlotWeapon)

	// clearing an empty slot is harmless
	s.Empty(cleared.SetSlot(gear.SlotRing, nil).Gear)
}

func (s *EquipmentTestSuite) TestSetSlotIsPure() {
	original := equipment.NewBuild().SetSlot(gear.SlotWeapon, &s.mace)
	_ = original.SetSlot(gear.SlotWeapon, &s.wand)
	_ = original.SetSlot(gear.SlotHead, &s.helm)

	weapon, _ := original.Item(gear.SlotWeapon)
	s.Equal(s.mace, weapon)
	s.Len(original.Gear, 1)
}

func (s *EquipmentTestSuite) TestSetSlotCopiesItem() {
	item := s.mace
	b := equipment.NewBuild().SetSlot(gear.SlotWeapon, &item)
	item.Name = "changed after equip"

	weapon, _ := b.Item(gear.SlotWeapon)
	s.Equal("Drygore mace", weapon.Name)
}

func (s *EquipmentTestSuite) TestSetSlotPermitsMismatchedItem() {
	b := equipment.NewBuild().SetSlot(gear.SlotShield, &s.mace)

	item, ok := b.Item(gear.SlotShield)
	s.True(ok)
	s.Equal(gear.SlotWeapon, item.Slot)
}

func (s *EquipmentTestSuite) TestSetInventoryCellBounds() {
	testCases := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{name: "first cell", index: 0},
		{name: "last cell", index: equipment.InventorySize - 1},
		{name: "capacity", index: equipment.InventorySize, wantErr: true},
		{name: "negative", index: -1, wantErr: true},
		{name: "far out", index: 1000, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			b := equipment.NewBuild()
			out, err := b.SetInventoryCell(tc.index, &s.shark)
			if tc.wantErr {
				s.Error(err)
				s.True(errors.IsOutOfRange(err))
				s.Equal(0, out.Inventory.Count())
				return
			}
			s.NoError(err)
			s.Equal(1, out.Inventory.Count())
			cell, ok, err := out.InventoryCell(tc.index)
			s.NoError(err)
			s.True(ok)
			s.Equal(s.shark, cell)
		})
	}
}

func (s *EquipmentTestSuite) TestSetInventoryCellReplacesOnlyThatCell() {
	b := equipment.NewBuild()
	b, err := b.SetInventoryCell(5, &s.shark)
	s.Require().NoError(err)
	b, err = b.SetInventoryCell(6, &s.shark)
	s.Require().NoError(err)

	next, err := b.SetInventoryCell(5, &s.helm)
	s.Require().NoError(err)

	five, _, _ := next.InventoryCell(5)
	six, _, _ := next.InventoryCell(6)
	s.Equal(s.helm, five)
	s.Equal(s.shark, six)
	s.Equal(2, next.Inventory.Count())

	// original untouched
	origFive, _, _ := b.InventoryCell(5)
	s.Equal(s.shark, origFive)

	emptied, err := next.SetInventoryCell(6, nil)
	s.Require().NoError(err)
	_, ok, _ := emptied.InventoryCell(6)
	s.False(ok)
}

func (s *EquipmentTestSuite) TestCloneIsDeep() {
	b, err := equipment.NewBuild().SetSlot(gear.SlotWeapon, &s.mace).SetInventoryCell(0, &s.shark)
	s.Require().NoError(err)

	clone := b.Clone()
	clone.Gear[gear.SlotHead] = s.helm
	clone.Inventory[0].Name = "mutated"

	s.NotContains(b.Gear, gear.SlotHead)
	cell, _, _ := b.InventoryCell(0)
	s.Equal("Rocktail", cell.Name)
}

func (s *EquipmentTestSuite) TestJSONRoundTrip() {
	b := equipment.NewBuild().SetSlot(gear.SlotWeapon, &s.mace).SetSlot(gear.SlotShield, &s.offhnd)
	b.ID = "preset-1"
	b.Name = "Telos melee"
	b.Description = "dual wield"
	b, err := b.SetInventoryCell(27, &s.shark)
	s.Require().NoError(err)

	data, err := json.Marshal(b)
	s.Require().NoError(err)

	var decoded equipment.Build
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(b, decoded)
}

func (s *EquipmentTestSuite) TestDecodeToleratesShortOrMissingInventory() {
	var b equipment.Build
	err := json.Unmarshal([]byte(`{"id":"p","name":"n","gear":{"Head":{"id":"h","name":"Helm","slot":"Head"}},"inventory":[null,{"id":"r","name":"Rocktail","slot":"Inventory"}]}`), &b)
	s.Require().NoError(err)

	s.Equal(1, b.Inventory.Count())
	cell, ok, _ := b.InventoryCell(1)
	s.True(ok)
	s.Equal("Rocktail", cell.Name)

	var bare equipment.Build
	s.Require().NoError(json.Unmarshal([]byte(`{"id":"p","name":"n"}`), &bare))
	s.Equal(0, bare.Inventory.Count())
	updated := bare.SetSlot(gear.SlotHead, &s.helm)
	s.Len(updated.Gear, 1)
}
