// Package main is the entry point for the pvmhub server and its tooling
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pvm-hub/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pvmhub",
	Short: "PvM Hub server",
	Long:  `PvM Hub serves the item catalog, gear presets, the gear simulator and boss guides over gRPC and a live websocket workspace.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "pvmhub.yaml", "Path to the YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCatalogCmd)
	rootCmd.AddCommand(checkStorageCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
