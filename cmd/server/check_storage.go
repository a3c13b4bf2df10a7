package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pvm-hub/internal/blobstore"
	"github.com/KirkDiggler/pvm-hub/internal/config"
	"github.com/KirkDiggler/pvm-hub/internal/entities/guide"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/redis"
)

var resetCorrupt bool

var checkStorageCmd = &cobra.Command{
	Use:   "check-storage",
	Short: "Check that stored presets and guides decode",
	Long: `Load the preset and guide documents from the configured storage backend and report any
that no longer decode. With --reset, corrupted documents can be replaced by an empty list
after confirmation.`,
	RunE: runCheckStorage,
}

func init() {
	checkStorageCmd.Flags().BoolVar(&resetCorrupt, "reset", false, "Offer to empty corrupted documents")
}

// namespaceCheck decodes one namespace and, when asked, empties it
type namespaceCheck struct {
	namespace string
	decode    func(ctx context.Context, store blobstore.Store) (int, error)
	reset     func(ctx context.Context, store blobstore.Store) error
}

func checkFor[T any](namespace string) namespaceCheck {
	return namespaceCheck{
		namespace: namespace,
		decode: func(ctx context.Context, store blobstore.Store) (int, error) {
			records, err := blobstore.LoadAll[T](ctx, store, namespace)
			return len(records), err
		},
		reset: func(ctx context.Context, store blobstore.Store) error {
			return blobstore.SaveAll(ctx, store, namespace, []T{})
		},
	}
}

func runCheckStorage(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	var redisClient redis.Client
	if cfg.Storage.Backend == blobstore.BackendRedis {
		if redisClient, err = openRedis(ctx, &cfg); err != nil {
			return err
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Failed to close redis: %v", err)
			}
		}()
	}

	store, closeStore, err := blobstore.Open(ctx, &blobstore.OpenConfig{
		Backend:     cfg.Storage.Backend,
		KeyPrefix:   cfg.Storage.KeyPrefix,
		RedisClient: redisClient,
		PostgresDSN: cfg.Storage.Postgres.DSN,
		SQLitePath:  cfg.Storage.SQLite.Path,
	})
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("Failed to close storage: %v", err)
		}
	}()

	fmt.Printf("Checking %s storage...\n", cfg.Storage.Backend)

	var corrupted []namespaceCheck
	for _, check := range []namespaceCheck{
		checkFor[equipment.Build](blobstore.NamespacePresets),
		checkFor[guide.Guide](blobstore.NamespaceGuides),
	} {
		n, err := check.decode(ctx, store)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: %d records\n", check.namespace, n)
		case errors.GetCode(err) == errors.CodeDataLoss:
			fmt.Printf("✗ %s: %v\n", check.namespace, err)
			corrupted = append(corrupted, check)
		default:
			return fmt.Errorf("failed to read %s: %w", check.namespace, err)
		}
	}

	if len(corrupted) == 0 {
		fmt.Println("No corrupted data found!")
		return nil
	}
	if !resetCorrupt {
		fmt.Println("\nRun again with --reset to empty the corrupted documents.")
		return nil
	}

	return confirmReset(os.Stdin, os.Stdout, store, corrupted, cfg.Server.ShutdownTimeout)
}

// confirmReset asks on in before emptying the corrupted namespaces. The reset
// gets its own timeout so time spent at the prompt does not count against it.
func confirmReset(in io.Reader, out io.Writer, store blobstore.Store, corrupted []namespaceCheck, timeout time.Duration) error {
	_, _ = fmt.Fprint(out, "\nDo you want to EMPTY these documents? All records in them are lost. (yes/no): ")
	var response string
	_, _ = fmt.Fscanln(in, &response)

	if response != "yes" {
		_, _ = fmt.Fprintln(out, "Aborted - no changes made")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, check := range corrupted {
		if err := check.reset(ctx, store); err != nil {
			_, _ = fmt.Fprintf(out, "Failed to reset %s: %v\n", check.namespace, err)
			continue
		}
		_, _ = fmt.Fprintf(out, "Reset %s\n", check.namespace)
	}
	return nil
}
