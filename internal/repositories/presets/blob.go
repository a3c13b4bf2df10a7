package presets

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/KirkDiggler/pvm-hub/internal/blobstore"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/pkg/idgen"
)

// Config holds the dependencies for the blob-backed repository
type Config struct {
	Store       blobstore.Store
	IDGenerator idgen.Generator
	// Namespace defaults to blobstore.NamespacePresets
	Namespace string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type blobRepository struct {
	// mu serializes load-modify-save cycles against the shared document
	mu        sync.Mutex
	store     blobstore.Store
	idGen     idgen.Generator
	namespace string
}

// NewBlobRepository creates a repository that keeps every preset in one
// blob store namespace
func NewBlobRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = blobstore.NamespacePresets
	}

	return &blobRepository{
		store:     cfg.Store,
		idGen:     cfg.IDGenerator,
		namespace: namespace,
	}, nil
}

func (r *blobRepository) load(ctx context.Context) ([]equipment.Build, error) {
	return blobstore.LoadAll[equipment.Build](ctx, r.store, r.namespace)
}

// List returns every preset in creation order
func (r *blobRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Presets: all}, nil
}

// Get returns one preset
func (r *blobRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(all, input.ID)
	if idx < 0 {
		return nil, errors.NotFoundf("preset %s not found", input.ID)
	}
	return &GetOutput{Preset: all[idx]}, nil
}

// Save appends or replaces a preset
func (r *blobRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	preset := input.Preset.Clone()
	created := preset.ID == ""
	if created {
		preset.ID = r.idGen.Generate()
		all = append(all, preset)
	} else {
		idx := indexOf(all, preset.ID)
		if idx < 0 {
			return nil, errors.NotFoundf("preset %s not found", preset.ID)
		}
		all[idx] = preset
	}

	if err := blobstore.SaveAll(ctx, r.store, r.namespace, all); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Preset saved", "preset_id", preset.ID, "created", created)
	return &SaveOutput{Preset: preset, Created: created}, nil
}

// Delete removes a preset
func (r *blobRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(all, input.ID)
	if idx < 0 {
		return nil, errors.NotFoundf("preset %s not found", input.ID)
	}
	all = slices.Delete(all, idx, idx+1)

	if err := blobstore.SaveAll(ctx, r.store, r.namespace, all); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Preset deleted", "preset_id", input.ID)
	return &DeleteOutput{}, nil
}

func indexOf(all []equipment.Build, id string) int {
	return slices.IndexFunc(all, func(b equipment.Build) bool { return b.ID == id })
}
