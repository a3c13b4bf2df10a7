// Package client provides test commands for the pvmhub gRPC services
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the pvmhub server",
	Long:  `Client commands allow you to test the pvmhub server by making real gRPC requests.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Catalog and simulator
	ClientCmd.AddCommand(searchItemsCmd)
	ClientCmd.AddCommand(simulateCmd)

	// Presets
	ClientCmd.AddCommand(listPresetsCmd)

	// Guides
	ClientCmd.AddCommand(listBossesCmd)
	ClientCmd.AddCommand(generateDraftCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// withConnection dials the server and hands the connection to newClient
func withConnection[C any](newClient func(grpc.ClientConnInterface) C) (C, func(), error) {
	var zero C
	conn, err := createConnection()
	if err != nil {
		return zero, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return newClient(conn), cleanup, nil
}

// rpcError turns a failed call into a readable error, listing field violations
// and noting when the server says the call can be retried.
func rpcError(action string, err error) error {
	err = errors.FromGRPCError(err)

	var b strings.Builder
	fmt.Fprintf(&b, "failed to %s: %s", action, errors.GetMessage(err))
	if fields, ok := errors.ValidationFields(err); ok {
		v := &errors.ValidationError{Fields: fields}
		for _, name := range v.FieldNames() {
			fmt.Fprintf(&b, "\n  %s: %s", name, strings.Join(fields[name], ", "))
		}
	}
	if errors.IsRetryable(err) {
		b.WriteString(" (retryable)")
	}

	return fmt.Errorf("%s [%s]", b.String(), errors.GetCode(err))
}
