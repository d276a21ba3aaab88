package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/FrenchMajesty/partition/utils/disjoint_set"
)

// FileForestPersistence implements ForestPersistence using file-based storage
type FileForestPersistence struct {
	filepath string
	codec    Codec
}

// NewFileForestPersistence creates a new file-based persistence handler.
// Paths ending in .json are stored as JSON, anything else in the binary
// format.
func NewFileForestPersistence(path string) *FileForestPersistence {
	var codec Codec = ProtoCodec{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		codec = JSONCodec{}
	}
	return NewFileForestPersistenceWithCodec(path, codec)
}

// NewFileForestPersistenceWithCodec creates a file-based persistence handler
// that uses codec regardless of the file extension.
func NewFileForestPersistenceWithCodec(path string, codec Codec) *FileForestPersistence {
	return &FileForestPersistence{
		filepath: path,
		codec:    codec,
	}
}

// Path returns the file the forest is stored in.
func (f *FileForestPersistence) Path() string {
	return f.filepath
}

// Load loads the forest from the file. If the file doesn't exist, returns a new empty forest.
func (f *FileForestPersistence) Load() (*disjoint_set.Forest[string], error) {
	data, err := os.ReadFile(f.filepath)
	if os.IsNotExist(err) {
		return disjoint_set.NewForest[string](), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read forest from file %s: %w", f.filepath, err)
	}

	snapshot, err := f.codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode forest from file %s: %w", f.filepath, err)
	}

	forest, err := disjoint_set.Restore(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to restore forest from file %s: %w", f.filepath, err)
	}
	return forest, nil
}

// Save saves the forest to the file
func (f *FileForestPersistence) Save(forest *disjoint_set.Forest[string]) error {
	data, err := f.codec.Marshal(forest.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode forest: %w", err)
	}

	if err := os.WriteFile(f.filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write forest to file %s: %w", f.filepath, err)
	}
	return nil
}
