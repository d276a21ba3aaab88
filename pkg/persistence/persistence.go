// Package persistence loads and saves string-keyed disjoint-set forests.
package persistence

import "github.com/FrenchMajesty/partition/utils/disjoint_set"

// ForestPersistence handles loading and saving a disjoint-set forest.
type ForestPersistence interface {
	Load() (*disjoint_set.Forest[string], error)
	Save(forest *disjoint_set.Forest[string]) error
}

// Codec converts forest snapshots to and from bytes.
type Codec interface {
	Marshal(s disjoint_set.Snapshot[string]) ([]byte, error)
	Unmarshal(data []byte) (disjoint_set.Snapshot[string], error)
}
