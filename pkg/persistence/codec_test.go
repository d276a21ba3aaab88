package persistence_test

import (
	"strings"
	"testing"

	"github.com/FrenchMajesty/partition/pkg/persistence"
	"github.com/FrenchMajesty/partition/utils/disjoint_set"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestProtoCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		snapshot disjoint_set.Snapshot[string]
	}{
		{
			name:     "empty",
			snapshot: disjoint_set.NewForest[string]().Snapshot(),
		},
		{
			name: "merged",
			snapshot: disjoint_set.Snapshot[string]{
				Elements: []string{"a", "b", "c"},
				Parents:  []int{1, 1, 2},
				Sizes:    []int{0, 2, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := persistence.ProtoCodec{}
			data, err := codec.Marshal(tt.snapshot)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			got, err := codec.Unmarshal(data)
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if diff := cmp.Diff(tt.snapshot, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProtoCodec_Unmarshal_Invalid(t *testing.T) {
	encode := func(t *testing.T, fields map[string]any) []byte {
		t.Helper()
		st, err := structpb.NewStruct(fields)
		if err != nil {
			t.Fatalf("NewStruct failed: %v", err)
		}
		data, err := proto.Marshal(st)
		if err != nil {
			t.Fatalf("proto.Marshal failed: %v", err)
		}
		return data
	}

	tests := []struct {
		name          string
		fields        map[string]any
		errorContains string
	}{
		{
			name:          "missing version",
			fields:        map[string]any{"elements": []any{}},
			errorContains: "unsupported snapshot version",
		},
		{
			name:          "future version",
			fields:        map[string]any{"version": 2},
			errorContains: "unsupported snapshot version",
		},
		{
			name:          "non string element",
			fields:        map[string]any{"version": 1, "elements": []any{7}},
			errorContains: "is not a string",
		},
		{
			name:          "fractional parent",
			fields:        map[string]any{"version": 1, "elements": []any{"a"}, "parents": []any{0.5}},
			errorContains: "snapshot parents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := persistence.ProtoCodec{}.Unmarshal(encode(t, tt.fields))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("Expected error containing %q, got %v", tt.errorContains, err)
			}
		})
	}
}
