package guides

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/pvm-hub/internal/blobstore"
	"github.com/KirkDiggler/pvm-hub/internal/entities/guide"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/pkg/clock"
	"github.com/KirkDiggler/pvm-hub/internal/pkg/idgen"
)

// Config holds the dependencies for the blob-backed repository
type Config struct {
	Store       blobstore.Store
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// Namespace defaults to blobstore.NamespaceGuides
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
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type blobRepository struct {
	mu        sync.Mutex
	store     blobstore.Store
	idGen     idgen.Generator
	clock     clock.Clock
	namespace string
}

// NewBlobRepository creates a repository that keeps every guide in one blob
// store namespace
func NewBlobRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = blobstore.NamespaceGuides
	}

	return &blobRepository{
		store:     cfg.Store,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		namespace: namespace,
	}, nil
}

func (r *blobRepository) load(ctx context.Context) ([]guide.Guide, error) {
	return blobstore.LoadAll[guide.Guide](ctx, r.store, r.namespace)
}

func (r *blobRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Guides: all}, nil
}

func (r *blobRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("guide ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(all, input.ID)
	if idx < 0 {
		return nil, errors.NotFoundf("guide %s not found", input.ID)
	}
	return &GetOutput{Guide: all[idx]}, nil
}

func (r *blobRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC().Format(time.RFC3339)
	g := input.Guide
	created := g.ID == ""

	if created {
		g.ID = r.idGen.Generate()
		if g.Author == "" {
			g.Author = guide.DefaultAuthor
		}
		g.CreatedAt = now
		g.UpdatedAt = now
		all = append(all, g)
	} else {
		idx := indexOf(all, g.ID)
		if idx < 0 {
			return nil, errors.NotFoundf("guide %s not found", g.ID)
		}
		stored := all[idx]
		stored.Title = g.Title
		stored.Boss = g.Boss
		stored.Content = g.Content
		stored.UpdatedAt = now
		all[idx] = stored
		g = stored
	}

	if err := blobstore.SaveAll(ctx, r.store, r.namespace, all); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Guide saved", "guide_id", g.ID, "boss", g.Boss, "created", created)
	return &SaveOutput{Guide: g, Created: created}, nil
}

func (r *blobRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("guide ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(all, input.ID)
	if idx < 0 {
		return nil, errors.NotFoundf("guide %s not found", input.ID)
	}
	all = slices.Delete(all, idx, idx+1)

	if err := blobstore.SaveAll(ctx, r.store, r.namespace, all); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Guide deleted", "guide_id", input.ID)
	return &DeleteOutput{}, nil
}

func indexOf(all []guide.Guide, id string) int {
	return slices.IndexFunc(all, func(g guide.Guide) bool { return g.ID == id })
}
