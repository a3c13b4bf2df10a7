// Package guides provides persistence for boss guides
package guides

//go:generate mockgen -destination=mock/mock_repository.go -package=guidesmock github.com/KirkDiggler/pvm-hub/internal/repositories/guides Repository

import (
	"context"

	"github.com/KirkDiggler/pvm-hub/internal/entities/guide"
)

// Repository defines the interface for guide persistence
type Repository interface {
	// List returns every guide in creation order
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get retrieves a guide by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if no guide has that ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates a guide when it has no ID, stamping ID, author and both
	// timestamps. Otherwise it updates title, boss, content and updatedAt of the
	// stored guide; author and createdAt are kept.
	// Returns errors.NotFound when the ID is set but nothing is stored under it
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a guide by ID
	// Returns errors.NotFound if no guide has that ID
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the input for listing guides
type ListInput struct{}

// ListOutput defines the output for listing guides
type ListOutput struct {
	Guides []guide.Guide
}

// GetInput defines the input for getting a guide
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a guide
type GetOutput struct {
	Guide guide.Guide
}

// SaveInput defines the input for saving a guide
type SaveInput struct {
	Guide guide.Guide
}

// SaveOutput defines the output for saving a guide
type SaveOutput struct {
	Guide   guide.Guide
	Created bool
}

// DeleteInput defines the input for deleting a guide
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a guide
type DeleteOutput struct{}
