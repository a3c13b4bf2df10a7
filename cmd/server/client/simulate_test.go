package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
)

func TestParseLoadout(t *testing.T) {
	loadout, err := parseLoadout([]string{"Weapon=drygore_mains_longsword", "Head="})
	require.NoError(t, err)
	assert.Equal(t, map[gear.Slot]string{
		gear.SlotWeapon: "drygore_mains_longsword",
		gear.SlotHead:   "",
	}, loadout)

	_, err = parseLoadout([]string{"drygore_mains_longsword"})
	assert.Error(t, err)

	_, err = parseLoadout([]string{"=rocktail"})
	assert.Error(t, err)
}
