package v1alpha1

import (
	"context"

	pvmv1alpha1 "github.com/KirkDiggler/pvm-hub/internal/api/v1alpha1"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/orchestrators/preset"
)

// PresetHandlerConfig holds dependencies for the preset handler
type PresetHandlerConfig struct {
	PresetService preset.Service
}

// Validate ensures all required dependencies are present
func (c *PresetHandlerConfig) Validate() error {
	if c.PresetService == nil {
		return errors.InvalidArgument("preset service is required")
	}
	return nil
}

// PresetHandler implements the preset gRPC service
type PresetHandler struct {
	presetService preset.Service
}

// NewPresetHandler creates a new preset handler with the given configuration
func NewPresetHandler(cfg *PresetHandlerConfig) (*PresetHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &PresetHandler{
		presetService: cfg.PresetService,
	}, nil
}

// ListPresets lists saved presets in creation order
func (h *PresetHandler) ListPresets(
	ctx context.Context,
	_ *pvmv1alpha1.ListPresetsRequest,
) (*pvmv1alpha1.ListPresetsResponse, error) {
	out, err := h.presetService.ListPresets(ctx, &preset.ListPresetsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.ListPresetsResponse{Presets: out.Presets}, nil
}

// GetPreset loads a preset with its stats
func (h *PresetHandler) GetPreset(
	ctx context.Context,
	req *pvmv1alpha1.GetPresetRequest,
) (*pvmv1alpha1.GetPresetResponse, error) {
	if req.PresetID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("preset_id is required"))
	}

	out, err := h.presetService.GetPreset(ctx, &preset.GetPresetInput{PresetID: req.PresetID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.GetPresetResponse{
		Preset: out.Preset,
		Stats:  out.Stats,
	}, nil
}

// SavePreset creates or updates a preset
func (h *PresetHandler) SavePreset(
	ctx context.Context,
	req *pvmv1alpha1.SavePresetRequest,
) (*pvmv1alpha1.SavePresetResponse, error) {
	out, err := h.presetService.SavePreset(ctx, &preset.SavePresetInput{Preset: req.Preset})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.SavePresetResponse{
		Preset:  out.Preset,
		Created: out.Created,
	}, nil
}

// DeletePreset deletes a preset once confirmed
func (h *PresetHandler) DeletePreset(
	ctx context.Context,
	req *pvmv1alpha1.DeletePresetRequest,
) (*pvmv1alpha1.DeletePresetResponse, error) {
	if req.PresetID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("preset_id is required"))
	}

	_, err := h.presetService.DeletePreset(ctx, &preset.DeletePresetInput{
		PresetID:  req.PresetID,
		Confirmed: req.Confirmed,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.DeletePresetResponse{}, nil
}

// EquipItem changes one gear slot of the supplied build
func (h *PresetHandler) EquipItem(
	ctx context.Context,
	req *pvmv1alpha1.EquipItemRequest,
) (*pvmv1alpha1.EquipItemResponse, error) {
	if req.Slot == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("slot is required"))
	}

	out, err := h.presetService.EquipItem(ctx, &preset.EquipItemInput{
		Build:  req.Build,
		Slot:   req.Slot,
		ItemID: req.ItemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.EquipItemResponse{
		Build: out.Build,
		Stats: out.Stats,
	}, nil
}

// SetInventoryItem changes one inventory cell of the supplied build
func (h *PresetHandler) SetInventoryItem(
	ctx context.Context,
	req *pvmv1alpha1.SetInventoryItemRequest,
) (*pvmv1alpha1.SetInventoryItemResponse, error) {
	out, err := h.presetService.SetInventoryItem(ctx, &preset.SetInventoryItemInput{
		Build:  req.Build,
		Index:  req.Index,
		ItemID: req.ItemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.SetInventoryItemResponse{Build: out.Build}, nil
}
