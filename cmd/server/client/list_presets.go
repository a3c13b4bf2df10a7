package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pvmv1alpha1 "github.com/KirkDiggler/pvm-hub/internal/api/v1alpha1"
	"github.com/KirkDiggler/pvm-hub/internal/stats"
)

var listPresetsCmd = &cobra.Command{
	Use:   "list-presets",
	Short: "List saved gear presets",
	RunE:  runListPresets,
}

func runListPresets(_ *cobra.Command, _ []string) error {
	client, cleanup, err := withConnection(pvmv1alpha1.NewPresetServiceClient)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListPresets(ctx, &pvmv1alpha1.ListPresetsRequest{})
	if err != nil {
		return rpcError("list presets", err)
	}

	if len(resp.Presets) == 0 {
		fmt.Println("No presets saved yet.")
		return nil
	}

	fmt.Printf("Found %d presets:\n\n", len(resp.Presets))
	for _, p := range resp.Presets {
		fmt.Printf("%s (ID: %s)\n", p.Name, p.ID)
		if p.Description != "" {
			fmt.Printf("   Description: %s\n", p.Description)
		}
		fmt.Printf("   Gear: %d slots, Inventory: %d items\n", len(p.Gear), p.InventoryCount())
		printStats(stats.ForBuild(p))
		fmt.Println()
	}

	return nil
}
