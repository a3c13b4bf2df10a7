// Package presets provides persistence for saved gear and inventory presets
package presets

//go:generate mockgen -destination=mock/mock_repository.go -package=presetsmock github.com/KirkDiggler/pvm-hub/internal/repositories/presets Repository

import (
	"context"

	"github.com/KirkDiggler/pvm-hub/internal/equipment"
)

// Repository defines the interface for preset persistence
type Repository interface {
	// List returns every saved preset in creation order
	// Returns errors.Unavailable when the store cannot be reached
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get retrieves a preset by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if no preset has that ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save stores a preset. A preset without an ID is appended under a fresh ID;
	// one with an ID replaces the stored preset in place.
	// Returns errors.NotFound when the ID is set but nothing is stored under it
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a preset by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if no preset has that ID
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the input for listing presets
type ListInput struct{}

// ListOutput defines the output for listing presets
type ListOutput struct {
	Presets []equipment.Build
}

// GetInput defines the input for getting a preset
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a preset
type GetOutput struct {
	Preset equipment.Build
}

// SaveInput defines the input for saving a preset
type SaveInput struct {
	Preset equipment.Build
}

// SaveOutput defines the output for saving a preset
type SaveOutput struct {
	Preset equipment.Build
	// Created is true when a new preset was appended
	Created bool
}

// DeleteInput defines the input for deleting a preset
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a preset
type DeleteOutput struct{}
