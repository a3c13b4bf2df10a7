package v1alpha1

import (
	"context"

	pvmv1alpha1 "github.com/KirkDiggler/pvm-hub/internal/api/v1alpha1"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/orchestrators/simulator"
)

// SimulatorHandlerConfig holds dependencies for the simulator handler
type SimulatorHandlerConfig struct {
	SimulatorService simulator.Service
}

// Validate ensures all required dependencies are present
func (c *SimulatorHandlerConfig) Validate() error {
	if c.SimulatorService == nil {
		return errors.InvalidArgument("simulator service is required")
	}
	return nil
}

// SimulatorHandler implements the gear simulator gRPC service
type SimulatorHandler struct {
	simulatorService simulator.Service
}

// NewSimulatorHandler creates a new simulator handler with the given configuration
func NewSimulatorHandler(cfg *SimulatorHandlerConfig) (*SimulatorHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &SimulatorHandler{
		simulatorService: cfg.SimulatorService,
	}, nil
}

// Simulate returns the combined stats of a loadout
func (h *SimulatorHandler) Simulate(
	ctx context.Context,
	req *pvmv1alpha1.SimulateRequest,
) (*pvmv1alpha1.SimulateResponse, error) {
	out, err := h.simulatorService.Simulate(ctx, &simulator.SimulateInput{Loadout: req.Loadout})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.SimulateResponse{
		Gear:  out.Gear,
		Stats: out.Stats,
	}, nil
}

// EquipItem changes one slot of the supplied gear
func (h *SimulatorHandler) EquipItem(
	ctx context.Context,
	req *pvmv1alpha1.SimulatorEquipItemRequest,
) (*pvmv1alpha1.SimulatorEquipItemResponse, error) {
	if req.Slot == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("slot is required"))
	}

	out, err := h.simulatorService.EquipItem(ctx, &simulator.EquipItemInput{
		Gear:   req.Gear,
		Slot:   req.Slot,
		ItemID: req.ItemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.SimulatorEquipItemResponse{
		Gear:  out.Gear,
		Stats: out.Stats,
	}, nil
}
