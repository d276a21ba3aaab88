package persistence_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/FrenchMajesty/partition/pkg/persistence"
	"github.com/FrenchMajesty/partition/utils/disjoint_set"
	"github.com/google/go-cmp/cmp"
)

func buildForest(t *testing.T) *disjoint_set.Forest[string] {
	t.Helper()
	forest := disjoint_set.NewForest[string]()
	for _, label := range []string{"technical_question", "tech_query", "asking_technical", "expressing_gratitude", "saying_thanks"} {
		if _, err := forest.MakeSet(label); err != nil {
			t.Fatalf("MakeSet failed: %v", err)
		}
	}
	for _, pair := range [][2]string{
		{"technical_question", "tech_query"},
		{"tech_query", "asking_technical"},
		{"expressing_gratitude", "saying_thanks"},
	} {
		if _, err := forest.Join(pair[0], pair[1]); err != nil {
			t.Fatalf("Join failed: %v", err)
		}
	}
	return forest
}

func TestFileForestPersistence_Load_NonExistentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "non_existent.bin")

	forest, err := persistence.NewFileForestPersistence(path).Load()
	if err != nil {
		t.Fatalf("Expected no error when loading non-existent file, got: %v", err)
	}
	if forest == nil {
		t.Fatal("Expected forest to be non-nil")
	}
	if forest.Len() != 0 {
		t.Errorf("Expected empty forest, got size: %d", forest.Len())
	}
}

func TestFileForestPersistence_Load_Corrupted(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "invalid json", file: "corrupted.json", content: "{invalid json}"},
		{name: "invalid binary", file: "corrupted.bin", content: "\xff\xff\xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write file: %v", err)
			}

			_, err := persistence.NewFileForestPersistence(path).Load()
			if err == nil {
				t.Error("Expected error when loading corrupted file, got nil")
			}
		})
	}
}

func TestFileForestPersistence_Load_Inconsistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.json")
	content := `{"elements":["a","b"],"parents":[1,0],"sizes":[0,0]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := persistence.NewFileForestPersistence(path).Load()
	if !errors.Is(err, disjoint_set.ErrCorruptSnapshot) {
		t.Errorf("Expected ErrCorruptSnapshot, got %v", err)
	}
}

func TestFileForestPersistence_Save_WriteError(t *testing.T) {
	// Try to write to a directory that doesn't exist
	path := filepath.Join(t.TempDir(), "nonexistent", "directory", "file.bin")

	forest := disjoint_set.NewForest[string]()
	forest.MakeSet("label1")

	err := persistence.NewFileForestPersistence(path).Save(forest)
	if err == nil {
		t.Error("Expected error when saving to nonexistent directory, got nil")
	}
}

func TestFileForestPersistence_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "binary", file: "forest_state.bin"},
		{name: "json", file: "forest_state.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			original := buildForest(t)

			store := persistence.NewFileForestPersistence(path)
			if err := store.Save(original); err != nil {
				t.Fatalf("Failed to save forest: %v", err)
			}
			loaded, err := store.Load()
			if err != nil {
				t.Fatalf("Failed to load forest: %v", err)
			}

			if diff := cmp.Diff(original.Snapshot(), loaded.Snapshot()); diff != "" {
				t.Errorf("Snapshot mismatch (-saved +loaded):\n%s", diff)
			}
			if loaded.CountSets() != 2 {
				t.Errorf("Expected 2 clusters, got: %d", loaded.CountSets())
			}
			connected, err := loaded.Connected("technical_question", "asking_technical")
			if err != nil {
				t.Fatalf("Connected failed: %v", err)
			}
			if !connected {
				t.Error("Expected 'technical_question' and 'asking_technical' to be connected")
			}
			connected, _ = loaded.Connected("technical_question", "saying_thanks")
			if connected {
				t.Error("Expected different clusters to not be connected")
			}
		})
	}
}

func TestFileForestPersistence_CodecByExtension(t *testing.T) {
	dir := t.TempDir()
	forest := buildForest(t)

	jsonPath := filepath.Join(dir, "state.JSON")
	if err := persistence.NewFileForestPersistence(jsonPath).Save(forest); err != nil {
		t.Fatalf("Failed to save forest: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if _, err := (persistence.JSONCodec{}).Unmarshal(data); err != nil {
		t.Errorf("Expected .JSON path to hold JSON, got: %v", err)
	}

	binPath := filepath.Join(dir, "state.bin")
	store := persistence.NewFileForestPersistenceWithCodec(binPath, persistence.JSONCodec{})
	if err := store.Save(forest); err != nil {
		t.Fatalf("Failed to save forest: %v", err)
	}
	if store.Path() != binPath {
		t.Errorf("Expected path %s, got %s", binPath, store.Path())
	}
	data, _ = os.ReadFile(binPath)
	if _, err := (persistence.JSONCodec{}).Unmarshal(data); err != nil {
		t.Errorf("Expected explicit codec to override the extension, got: %v", err)
	}
}
