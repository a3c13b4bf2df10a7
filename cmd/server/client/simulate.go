package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pvmv1alpha1 "github.com/KirkDiggler/pvm-hub/internal/api/v1alpha1"
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [slot=item-id...]",
	Short: "Compute combat stats for a gear loadout",
	Long: `Equip items by slot and print the combined stats. Examples:

  simulate Weapon=drygore_mains_longsword Head=masterwork_helm
  simulate Weapon=seismic_wand Shield=seismic_singularity Head=virtus_mask`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func runSimulate(_ *cobra.Command, args []string) error {
	loadout, err := parseLoadout(args)
	if err != nil {
		return err
	}

	client, cleanup, err := withConnection(pvmv1alpha1.NewSimulatorServiceClient)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Simulate(ctx, &pvmv1alpha1.SimulateRequest{Loadout: loadout})
	if err != nil {
		return rpcError("simulate", err)
	}

	fmt.Printf("Equipped:\n")
	for _, slot := range gear.EquipSlots {
		if item, ok := resp.Gear[slot]; ok {
			fmt.Printf("   %-10s %s\n", slot, item.Name)
		}
	}

	fmt.Printf("\nTotals:\n")
	if resp.Stats.IsZero() {
		fmt.Printf("   (all zero)\n")
		return nil
	}
	printStats(resp.Stats)
	return nil
}

func parseLoadout(args []string) (map[gear.Slot]string, error) {
	loadout := make(map[gear.Slot]string, len(args))
	for _, arg := range args {
		slot, id, ok := strings.Cut(arg, "=")
		if !ok || slot == "" {
			return nil, fmt.Errorf("expected slot=item-id, got %q", arg)
		}
		loadout[gear.Slot(slot)] = id
	}
	return loadout, nil
}
