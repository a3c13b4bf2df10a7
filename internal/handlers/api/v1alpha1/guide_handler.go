package v1alpha1

import (
	"context"

	pvmv1alpha1 "github.com/KirkDiggler/pvm-hub/internal/api/v1alpha1"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/orchestrators/guides"
)

// GuideHandlerConfig holds dependencies for the guide handler
type GuideHandlerConfig struct {
	GuideService guides.Service
}

// Validate ensures all required dependencies are present
func (c *GuideHandlerConfig) Validate() error {
	if c.GuideService == nil {
		return errors.InvalidArgument("guide service is required")
	}
	return nil
}

// GuideHandler implements the guide gRPC service
type GuideHandler struct {
	guideService guides.Service
}

// NewGuideHandler creates a new guide handler with the given configuration
func NewGuideHandler(cfg *GuideHandlerConfig) (*GuideHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &GuideHandler{
		guideService: cfg.GuideService,
	}, nil
}

// ListGuides lists guides in creation order
func (h *GuideHandler) ListGuides(
	ctx context.Context,
	_ *pvmv1alpha1.ListGuidesRequest,
) (*pvmv1alpha1.ListGuidesResponse, error) {
	out, err := h.guideService.ListGuides(ctx, &guides.ListGuidesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.ListGuidesResponse{Guides: out.Guides}, nil
}

// GetGuide loads a guide with its table of contents
func (h *GuideHandler) GetGuide(
	ctx context.Context,
	req *pvmv1alpha1.GetGuideRequest,
) (*pvmv1alpha1.GetGuideResponse, error) {
	if req.GuideID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("guide_id is required"))
	}

	out, err := h.guideService.GetGuide(ctx, &guides.GetGuideInput{GuideID: req.GuideID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.GetGuideResponse{
		Guide:           out.Guide,
		TableOfContents: out.TableOfContents,
	}, nil
}

// SaveGuide creates or updates a guide
func (h *GuideHandler) SaveGuide(
	ctx context.Context,
	req *pvmv1alpha1.SaveGuideRequest,
) (*pvmv1alpha1.SaveGuideResponse, error) {
	out, err := h.guideService.SaveGuide(ctx, &guides.SaveGuideInput{Guide: req.Guide})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.SaveGuideResponse{
		Guide:   out.Guide,
		Created: out.Created,
	}, nil
}

// DeleteGuide deletes a guide once confirmed
func (h *GuideHandler) DeleteGuide(
	ctx context.Context,
	req *pvmv1alpha1.DeleteGuideRequest,
) (*pvmv1alpha1.DeleteGuideResponse, error) {
	if req.GuideID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("guide_id is required"))
	}

	_, err := h.guideService.DeleteGuide(ctx, &guides.DeleteGuideInput{
		GuideID:   req.GuideID,
		Confirmed: req.Confirmed,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.DeleteGuideResponse{}, nil
}

// ListBosses returns the boss reference list
func (h *GuideHandler) ListBosses(
	ctx context.Context,
	_ *pvmv1alpha1.ListBossesRequest,
) (*pvmv1alpha1.ListBossesResponse, error) {
	out, err := h.guideService.ListBosses(ctx, &guides.ListBossesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pvmv1alpha1.ListBossesResponse{Bosses: out.Bosses}, nil
}

// GenerateDraft writes a guide draft. A failed generation is a successful
// call with status "failed".
func (h *GuideHandler) GenerateDraft(
	ctx context.Context,
	req *pvmv1alpha1.GenerateDraftRequest,
) (*pvmv1alpha1.GenerateDraftResponse, error) {
	if req.BossName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("boss_name is required"))
	}

	out, err := h.guideService.GenerateDraft(ctx, &guides.GenerateDraftInput{
		BossName: req.BossName,
		Style:    req.Style,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &pvmv1alpha1.GenerateDraftResponse{
		Status:        pvmv1alpha1.DraftStatusFailed,
		Text:          out.Draft.Text,
		FailureReason: out.Draft.FailureReason,
		FinishReason:  out.Draft.FinishReason,
	}
	if out.Draft.Succeeded() {
		resp.Status = pvmv1alpha1.DraftStatusSucceeded
		resp.Truncated = out.Draft.Truncated
	}
	return resp, nil
}
