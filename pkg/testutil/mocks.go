package testutil

import (
	"sync"

	"github.com/FrenchMajesty/partition/utils/disjoint_set"
)

// MockForestPersistence is a mock implementation of ForestPersistence for testing
type MockForestPersistence struct {
	LoadFunc func() (*disjoint_set.Forest[string], error)
	SaveFunc func(forest *disjoint_set.Forest[string]) error

	mu        sync.Mutex
	LoadCount int
	SaveCount int
	// LastSnapshot is the shape of the forest passed to the most recent Save
	LastSnapshot disjoint_set.Snapshot[string]
}

func (m *MockForestPersistence) Load() (*disjoint_set.Forest[string], error) {
	m.mu.Lock()
	m.LoadCount++
	m.mu.Unlock()

	if m.LoadFunc != nil {
		return m.LoadFunc()
	}

	// Default: return empty forest
	return disjoint_set.NewForest[string](), nil
}

func (m *MockForestPersistence) Save(forest *disjoint_set.Forest[string]) error {
	m.mu.Lock()
	m.SaveCount++
	m.LastSnapshot = forest.Snapshot()
	m.mu.Unlock()

	if m.SaveFunc != nil {
		return m.SaveFunc(forest)
	}

	return nil
}

// Saves returns the number of Save calls so far.
func (m *MockForestPersistence) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SaveCount
}
