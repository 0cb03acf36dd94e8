package favorites

import (
	"context"
	"sync"
)

// MemoryStore keeps the encoded favorites in process memory. SaveErr, when
// set, makes Save fail without touching the stored value.
type MemoryStore struct {
	mu      sync.Mutex
	value   []byte
	saves   int
	SaveErr error
	LoadErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.value == nil {
		return []string{}, nil
	}
	return decodeNames(m.value)
}

func (m *MemoryStore) Save(ctx context.Context, names []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}

	b, err := encodeNames(names)
	if err != nil {
		return err
	}
	m.value = b
	return nil
}

// Saves reports how many times Save was called, including failed calls.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Raw returns the stored JSON document.
func (m *MemoryStore) Raw() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.value)
}
