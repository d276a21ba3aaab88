package persistence

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/FrenchMajesty/partition/utils/disjoint_set"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// snapshotVersion is written into binary snapshots and checked on read.
const snapshotVersion = 1

// JSONCodec stores snapshots as JSON.
type JSONCodec struct{}

func (JSONCodec) Marshal(s disjoint_set.Snapshot[string]) ([]byte, error) {
	return json.Marshal(s)
}

func (JSONCodec) Unmarshal(data []byte) (disjoint_set.Snapshot[string], error) {
	var s disjoint_set.Snapshot[string]
	err := json.Unmarshal(data, &s)
	return s, err
}

// ProtoCodec stores snapshots as a binary-encoded google.protobuf.Struct.
type ProtoCodec struct{}

func (ProtoCodec) Marshal(s disjoint_set.Snapshot[string]) ([]byte, error) {
	elements := make([]any, len(s.Elements))
	for i, e := range s.Elements {
		elements[i] = e
	}

	st, err := structpb.NewStruct(map[string]any{
		"version":  snapshotVersion,
		"elements": elements,
		"parents":  intsToList(s.Parents),
		"sizes":    intsToList(s.Sizes),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot struct: %w", err)
	}
	return proto.Marshal(st)
}

func (ProtoCodec) Unmarshal(data []byte) (disjoint_set.Snapshot[string], error) {
	var s disjoint_set.Snapshot[string]

	st := &structpb.Struct{}
	if err := proto.Unmarshal(data, st); err != nil {
		return s, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	fields := st.GetFields()

	version, ok := fields["version"].GetKind().(*structpb.Value_NumberValue)
	if !ok || version.NumberValue != snapshotVersion {
		return s, fmt.Errorf("unsupported snapshot version %v", fields["version"].AsInterface())
	}

	for _, v := range fields["elements"].GetListValue().GetValues() {
		e, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return s, fmt.Errorf("snapshot element %v is not a string", v.AsInterface())
		}
		s.Elements = append(s.Elements, e.StringValue)
	}

	var err error
	if s.Parents, err = listToInts(fields["parents"]); err != nil {
		return s, fmt.Errorf("snapshot parents: %w", err)
	}
	if s.Sizes, err = listToInts(fields["sizes"]); err != nil {
		return s, fmt.Errorf("snapshot sizes: %w", err)
	}
	return s, nil
}

func intsToList(ints []int) []any {
	list := make([]any, len(ints))
	for i, n := range ints {
		list[i] = n
	}
	return list
}

func listToInts(v *structpb.Value) ([]int, error) {
	values := v.GetListValue().GetValues()
	ints := make([]int, 0, len(values))
	for _, item := range values {
		n, ok := item.GetKind().(*structpb.Value_NumberValue)
		if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
			return nil, fmt.Errorf("%v is not an integer", item.AsInterface())
		}
		ints = append(ints, int(n.NumberValue))
	}
	return ints, nil
}
