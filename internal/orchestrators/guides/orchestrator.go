// Package guides implements the guide orchestrator
package guides

//go:generate mockgen -destination=mock/mock_service.go -package=guidesmock github.com/KirkDiggler/pvm-hub/internal/orchestrators/guides Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/pvm-hub/internal/clients/draft"
	"github.com/KirkDiggler/pvm-hub/internal/entities/guide"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	guiderepo "github.com/KirkDiggler/pvm-hub/internal/repositories/guides"
)

// MsgStoppedEarly is the failure reason when the service cut a draft short
// for anything other than the output limit
const MsgStoppedEarly = "The AI response stopped early"

// Service defines the interface for guide operations
type Service interface {
	ListGuides(ctx context.Context, input *ListGuidesInput) (*ListGuidesOutput, error)
	GetGuide(ctx context.Context, input *GetGuideInput) (*GetGuideOutput, error)
	SaveGuide(ctx context.Context, input *SaveGuideInput) (*SaveGuideOutput, error)
	DeleteGuide(ctx context.Context, input *DeleteGuideInput) (*DeleteGuideOutput, error)
	ListBosses(ctx context.Context, input *ListBossesInput) (*ListBossesOutput, error)

	// GenerateDraft asks the draft service for a guide. Service failures come
	// back as a Failed draft, not as an error.
	GenerateDraft(ctx context.Context, input *GenerateDraftInput) (*GenerateDraftOutput, error)
}

// Config holds the dependencies for the guide orchestrator
type Config struct {
	GuideRepo guiderepo.Repository
	Drafts    draft.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GuideRepo == nil {
		vb.RequiredField("GuideRepo")
	}
	if c.Drafts == nil {
		vb.RequiredField("Drafts")
	}

	return vb.Build()
}

type orchestrator struct {
	guideRepo guiderepo.Repository
	drafts    draft.Generator
}

// NewOrchestrator creates a new guide orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		guideRepo: cfg.GuideRepo,
		drafts:    cfg.Drafts,
	}, nil
}

func (o *orchestrator) ListGuides(ctx context.Context, _ *ListGuidesInput) (*ListGuidesOutput, error) {
	out, err := o.guideRepo.List(ctx, guiderepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guides")
	}

	return &ListGuidesOutput{Guides: out.Guides}, nil
}

func (o *orchestrator) GetGuide(ctx context.Context, input *GetGuideInput) (*GetGuideOutput, error) {
	if input == nil || input.GuideID == "" {
		return nil, errors.InvalidArgument("guide ID is required")
	}

	out, err := o.guideRepo.Get(ctx, guiderepo.GetInput{ID: input.GuideID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get guide %s", input.GuideID)
	}

	return &GetGuideOutput{
		Guide:           out.Guide,
		TableOfContents: guide.TableOfContents(out.Guide.Content),
	}, nil
}

func (o *orchestrator) SaveGuide(ctx context.Context, input *SaveGuideInput) (*SaveGuideOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	g := input.Guide
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("title", g.Title, vb)
	errors.ValidateRequired("boss", g.Boss, vb)
	errors.ValidateRequired("content", g.Content, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	g.Title = strings.TrimSpace(g.Title)
	g.Boss = strings.TrimSpace(g.Boss)

	out, err := o.guideRepo.Save(ctx, guiderepo.SaveInput{Guide: g})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save guide")
	}

	if !guide.KnownBoss(out.Guide.Boss) {
		slog.DebugContext(ctx, "Guide saved for unlisted boss", "boss", out.Guide.Boss)
	}
	slog.InfoContext(ctx, "Guide saved",
		"guide_id", out.Guide.ID,
		"boss", out.Guide.Boss,
		"created", out.Created,
	)

	return &SaveGuideOutput{
		Guide:   out.Guide,
		Created: out.Created,
	}, nil
}

func (o *orchestrator) DeleteGuide(ctx context.Context, input *DeleteGuideInput) (*DeleteGuideOutput, error) {
	if input == nil || input.GuideID == "" {
		return nil, errors.InvalidArgument("guide ID is required")
	}
	if !input.Confirmed {
		return nil, errors.FailedPrecondition("delete must be confirmed").
			WithMeta("guide_id", input.GuideID)
	}

	if _, err := o.guideRepo.Delete(ctx, guiderepo.DeleteInput{ID: input.GuideID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete guide %s", input.GuideID)
	}

	slog.InfoContext(ctx, "Guide deleted", "guide_id", input.GuideID)

	return &DeleteGuideOutput{}, nil
}

func (o *orchestrator) ListBosses(_ context.Context, _ *ListBossesInput) (*ListBossesOutput, error) {
	bosses := make([]string, len(guide.Bosses))
	copy(bosses, guide.Bosses)
	return &ListBossesOutput{Bosses: bosses}, nil
}

func (o *orchestrator) GenerateDraft(ctx context.Context, input *GenerateDraftInput) (*GenerateDraftOutput, error) {
	if input == nil || strings.TrimSpace(input.BossName) == "" {
		return nil, errors.InvalidArgument("boss name is required")
	}

	out, err := o.drafts.Generate(ctx, &draft.GenerateInput{
		BossName: strings.TrimSpace(input.BossName),
		Style:    input.Style,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.FromContext(ctx.Err(), "draft generation abandoned")
		}

		slog.WarnContext(ctx, "Draft generation failed",
			"boss", input.BossName,
			"code", errors.GetCode(err),
			"error", err,
		)
		return &GenerateDraftOutput{Draft: Draft{
			Status:        DraftFailed,
			FailureReason: errors.GetMessage(err),
		}}, nil
	}

	switch out.FinishReason {
	case draft.FinishStop, draft.FinishMaxTokens, "":
		return &GenerateDraftOutput{Draft: Draft{
			Status:       DraftSucceeded,
			Text:         out.Text,
			Truncated:    out.FinishReason == draft.FinishMaxTokens,
			FinishReason: out.FinishReason,
		}}, nil
	default:
		slog.WarnContext(ctx, "Draft stopped early",
			"boss", input.BossName,
			"finish_reason", out.FinishReason,
			"chars", len(out.Text),
		)
		return &GenerateDraftOutput{Draft: Draft{
			Status:        DraftFailed,
			Text:          out.Text,
			FailureReason: fmt.Sprintf("%s (%s).", MsgStoppedEarly, out.FinishReason),
			FinishReason:  out.FinishReason,
		}}, nil
	}
}
