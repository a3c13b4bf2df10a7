package guides

import (
	"github.com/KirkDiggler/pvm-hub/internal/entities/guide"
)

// DraftStatus tags the outcome of a draft generation
type DraftStatus string

const (
	DraftSucceeded DraftStatus = "succeeded"
	DraftFailed    DraftStatus = "failed"
)

// Draft is the result of a generation request. A succeeded draft carries Text.
// A failed draft carries FailureReason and, when the service stopped early,
// whatever Text it produced before stopping.
type Draft struct {
	Status DraftStatus
	Text   string
	// Truncated is set when the service stopped at the output limit
	Truncated     bool
	FailureReason string
	// FinishReason is the service's reason for ending the text, empty when no text came back
	FinishReason string
}

// Succeeded reports whether the draft carries usable text
func (d Draft) Succeeded() bool {
	return d.Status == DraftSucceeded
}

// ListGuidesInput defines the request for listing guides
type ListGuidesInput struct{}

// ListGuidesOutput defines the response for listing guides
type ListGuidesOutput struct {
	Guides []guide.Guide
}

// GetGuideInput defines the request for loading a guide
type GetGuideInput struct {
	GuideID string
}

// GetGuideOutput defines the response for loading a guide
type GetGuideOutput struct {
	Guide           guide.Guide
	TableOfContents []guide.Heading
}

// SaveGuideInput defines the request for creating or updating a guide
type SaveGuideInput struct {
	Guide guide.Guide
}

// SaveGuideOutput defines the response for saving a guide
type SaveGuideOutput struct {
	Guide   guide.Guide
	Created bool
}

// DeleteGuideInput defines the request for deleting a guide
type DeleteGuideInput struct {
	GuideID   string
	Confirmed bool
}

// DeleteGuideOutput defines the response for deleting a guide
type DeleteGuideOutput struct{}

// ListBossesInput defines the request for the boss reference list
type ListBossesInput struct{}

// ListBossesOutput defines the response for the boss reference list
type ListBossesOutput struct {
	Bosses []string
}

// GenerateDraftInput defines the request for an AI-written draft
type GenerateDraftInput struct {
	BossName string
	Style    string
}

// GenerateDraftOutput defines the response for an AI-written draft
type GenerateDraftOutput struct {
	Draft Draft
}
