package client

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	pvmv1alpha1 "github.com/KirkDiggler/pvm-hub/internal/api/v1alpha1"
)

var draftStyle string

var listBossesCmd = &cobra.Command{
	Use:   "list-bosses",
	Short: "List the bosses guides can be written for",
	RunE:  runListBosses,
}

var generateDraftCmd = &cobra.Command{
	Use:   "generate-draft [boss]",
	Short: "Generate a guide draft for a boss",
	Long: `Ask the draft generator for a markdown guide. Examples:

  generate-draft Telos
  generate-draft Vorago --style casual`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerateDraft,
}

func init() {
	generateDraftCmd.Flags().StringVar(&draftStyle, "style", "", "Tone of the draft (default: detailed and beginner-friendly)")
}

func runListBosses(_ *cobra.Command, _ []string) error {
	client, cleanup, err := withConnection(pvmv1alpha1.NewGuideServiceClient)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListBosses(ctx, &pvmv1alpha1.ListBossesRequest{})
	if err != nil {
		return rpcError("list bosses", err)
	}

	for _, boss := range resp.Bosses {
		fmt.Println(boss)
	}
	return nil
}

func runGenerateDraft(_ *cobra.Command, args []string) error {
	client, cleanup, err := withConnection(pvmv1alpha1.NewGuideServiceClient)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Generating %s draft via %s...", args[0], serverAddr)
	start := time.Now()

	resp, err := client.GenerateDraft(ctx, &pvmv1alpha1.GenerateDraftRequest{
		BossName: args[0],
		Style:    draftStyle,
	})
	if err != nil {
		return rpcError("generate draft", err)
	}

	if resp.Status != pvmv1alpha1.DraftStatusSucceeded {
		if resp.Text != "" {
			fmt.Println(resp.Text)
			fmt.Println()
		}
		return fmt.Errorf("draft generation failed: %s", resp.FailureReason)
	}

	fmt.Println(resp.Text)
	if resp.Truncated {
		fmt.Println("\n(draft was cut off at the output token limit)")
	}
	log.Printf("Draft ready in %s", time.Since(start).Round(time.Millisecond))
	return nil
}
