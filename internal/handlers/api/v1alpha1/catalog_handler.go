// Package v1alpha1 handles the pvmhub grpc service interface
package v1alpha1

import (
	"context"

	pvmv1alpha1 "github.com/KirkDiggler/pvm-hub/internal/api/v1alpha1"
	"github.com/KirkDiggler/pvm-hub/internal/catalog"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

// CatalogHandlerConfig holds dependencies for the catalog handler
type CatalogHandlerConfig struct {
	Catalog catalog.Catalog
}

// Validate ensures all required dependencies are present
func (c *CatalogHandlerConfig) Validate() error {
	if c.Catalog == nil {
		return errors.InvalidArgument("catalog is required")
	}
	return nil
}

// CatalogHandler implements the catalog gRPC service
type CatalogHandler struct {
	catalog catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler with the given configuration
func NewCatalogHandler(cfg *CatalogHandlerConfig) (*CatalogHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CatalogHandler{
		catalog: cfg.Catalog,
	}, nil
}

// SearchItems searches item names, optionally within one slot
func (h *CatalogHandler) SearchItems(
	ctx context.Context,
	req *pvmv1alpha1.SearchItemsRequest,
) (*pvmv1alpha1.SearchItemsResponse, error) {
	out, err := h.catalog.Search(ctx, catalog.SearchInput{
		Query: req.Query,
		Slot:  req.Slot,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.SearchItemsResponse{Items: out.Items}, nil
}

// GetItem returns one item
func (h *CatalogHandler) GetItem(
	ctx context.Context,
	req *pvmv1alpha1.GetItemRequest,
) (*pvmv1alpha1.GetItemResponse, error) {
	if req.ItemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.catalog.Get(ctx, catalog.GetInput{ID: req.ItemID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.GetItemResponse{Item: out.Item}, nil
}
