// Package blobstore persists one JSON document per namespace.
//
// A namespace holds the full list of records for one collection (presets,
// guides). Callers read the whole list, change it and write it back; the store
// itself never looks inside a document.
package blobstore

//go:generate mockgen -destination=mock/mock_store.go -package=blobstoremock github.com/KirkDiggler/pvm-hub/internal/blobstore Store

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

// Namespaces used by the repositories
const (
	NamespacePresets = "presets"
	NamespaceGuides  = "guides"
)

// Store is a key-value blob store keyed by namespace
type Store interface {
	// Load returns the document stored under namespace, or nil if there is none
	// Returns errors.Unavailable when the backend cannot be reached
	Load(ctx context.Context, namespace string) ([]byte, error)

	// Save replaces the document stored under namespace. data must be JSON.
	// Returns errors.Unavailable when the backend cannot be reached
	Save(ctx context.Context, namespace string, data []byte) error
}

// LoadAll reads and decodes the record list stored under namespace. A namespace
// that was never written yields an empty list.
func LoadAll[T any](ctx context.Context, store Store, namespace string) ([]T, error) {
	data, err := store.Load(ctx, namespace)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", namespace)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "corrupt %s document", namespace)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// SaveAll encodes records and replaces the namespace with them
func SaveAll[T any](ctx context.Context, store Store, namespace string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", namespace)
	}

	if err := store.Save(ctx, namespace, data); err != nil {
		return errors.Wrapf(err, "failed to save %s", namespace)
	}
	return nil
}

func validNamespace(namespace string) error {
	if namespace == "" {
		return errors.InvalidArgument("namespace is required")
	}
	return nil
}
