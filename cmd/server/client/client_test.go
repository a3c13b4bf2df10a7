package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

func TestRPCError(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "", vb)
	errors.ValidateRequired("boss", "", vb)

	testCases := []struct {
		name     string
		action   string
		err      error
		contains []string
	}{
		{
			name:   "validation fields are listed in order",
			action: "save preset",
			err:    errors.ToGRPCError(vb.Build()),
			contains: []string{
				"failed to save preset: validation failed: boss: is required; name: is required" +
					"\n  boss: is required\n  name: is required [INVALID_ARGUMENT]",
			},
		},
		{
			name:     "catalog outage is retryable",
			action:   "search items",
			err:      errors.ToGRPCError(errors.CatalogUnavailable(fmt.Errorf("dial tcp"))),
			contains: []string{"failed to search items: catalog unavailable (retryable) [UNAVAILABLE]"},
		},
		{
			name:     "plain status",
			action:   "list presets",
			err:      status.Error(codes.NotFound, "preset not found"),
			contains: []string{"failed to list presets: preset not found [NOT_FOUND]"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := rpcError(tc.action, tc.err).Error()
			for _, want := range tc.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}
