package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pvm-hub/internal/catalog"
	"github.com/KirkDiggler/pvm-hub/internal/config"
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
)

var seedFile string

var seedCatalogCmd = &cobra.Command{
	Use:   "seed-catalog",
	Short: "Load catalog items into Redis",
	Long: `Replace the Redis catalog with the built-in seed items, or with the items in a YAML file.

The file uses the same layout as the built-in seed:

  items:
    - id: rocktail
      name: Rocktail
      slot: Inventory
      bonuses: {lifePoints: 10}`,
	RunE: runSeedCatalog,
}

func init() {
	seedCatalogCmd.Flags().StringVar(&seedFile, "file", "", "YAML item file (defaults to the built-in seed)")
}

func runSeedCatalog(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	items, err := loadItems(seedFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	client, err := openRedis(ctx, &cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Printf("Failed to close redis: %v", err)
		}
	}()

	if err := catalog.Seed(ctx, client, cfg.Storage.KeyPrefix, items); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	fmt.Printf("Seeded %d items into %s\n", len(items), cfg.Storage.Redis.Addr)
	return nil
}

func loadItems(path string) ([]gear.Item, error) {
	if path == "" {
		return catalog.LoadSeed()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return catalog.ParseItems(data)
}
