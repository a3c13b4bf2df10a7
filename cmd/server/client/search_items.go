package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	pvmv1alpha1 "github.com/KirkDiggler/pvm-hub/internal/api/v1alpha1"
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/stats"
)

var searchSlot string

var searchItemsCmd = &cobra.Command{
	Use:   "search-items [query]",
	Short: "Search the item catalog",
	Long: `Search item names, case-insensitively, optionally within one slot. Examples:

  search-items drygore
  search-items --slot Head
  search-items pernix --slot Body`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearchItems,
}

func init() {
	searchItemsCmd.Flags().StringVar(&searchSlot, "slot", "", "Only items for this slot (e.g. Weapon, Inventory)")
}

func runSearchItems(_ *cobra.Command, args []string) error {
	client, cleanup, err := withConnection(pvmv1alpha1.NewCatalogServiceClient)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &pvmv1alpha1.SearchItemsRequest{Slot: gear.Slot(searchSlot)}
	if len(args) > 0 {
		req.Query = args[0]
	}

	log.Printf("Searching %s for %q...", serverAddr, req.Query)

	resp, err := client.SearchItems(ctx, req)
	if err != nil {
		return rpcError("search items", err)
	}

	fmt.Printf("Found %d items:\n\n", len(resp.Items))
	for _, item := range resp.Items {
		fmt.Printf("%s (ID: %s)\n", item.Name, item.ID)
		fmt.Printf("   Slot: %s\n", item.Slot)
		printStats(stats.FromBonuses(item.Bonuses))
		fmt.Println()
	}

	return nil
}

// printStats prints the non-zero totals of a summary
func printStats(s stats.Summary) {
	styles := func(label string, c gear.CombatStyles) {
		if c == (gear.CombatStyles{}) {
			return
		}
		fmt.Printf("   %s: stab %d, slash %d, crush %d, magic %d, range %d\n",
			label, c.Stab, c.Slash, c.Crush, c.Magic, c.Range)
	}
	value := func(label string, v int) {
		if v != 0 {
			fmt.Printf("   %s: %d\n", label, v)
		}
	}

	styles("Attack", s.TotalAttack)
	value("Strength", s.TotalStrength)
	value("Magic damage", s.TotalMagicDamage)
	value("Range strength", s.TotalRangeStrength)
	styles("Defence", s.TotalDefence)
	value("Armour", s.TotalArmour)
	value("Life points", s.TotalLifePoints)
	value("Prayer", s.TotalPrayer)
}
