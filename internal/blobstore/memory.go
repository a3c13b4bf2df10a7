package blobstore

import (
	"bytes"
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory creates a process-local store. Contents are lost on restart.
func NewMemory() Store {
	return &memoryStore{docs: make(map[string][]byte)}
}

func (m *memoryStore) Load(_ context.Context, namespace string) ([]byte, error) {
	if err := validNamespace(namespace); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[namespace]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(data), nil
}

func (m *memoryStore) Save(_ context.Context, namespace string, data []byte) error {
	if err := validNamespace(namespace); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[namespace] = bytes.Clone(data)
	return nil
}
