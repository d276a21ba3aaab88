package disjoint_set

import (
	"encoding/json"
	"fmt"
)

// Snapshot is a plain representation of a forest's shape. Element i has
// parent Parents[i]; Sizes[i] is the class size when i is a root and 0
// otherwise.
type Snapshot[E comparable] struct {
	Elements []E   `json:"elements"`
	Parents  []int `json:"parents"`
	Sizes    []int `json:"sizes"`
}

// Snapshot captures the current shape of the forest. It does not compress
// any path.
func (f *Forest[E]) Snapshot() Snapshot[E] {
	s := Snapshot[E]{
		Elements: make([]E, len(f.values)),
		Parents:  make([]int, len(f.parent)),
		Sizes:    make([]int, len(f.size)),
	}
	copy(s.Elements, f.values)
	copy(s.Parents, f.parent)
	for i := range f.size {
		if f.isRoot(i) {
			s.Sizes[i] = f.size[i]
		}
	}
	return s
}

// Restore builds a forest from a snapshot. The new forest has its own
// identity, so handles issued by the forest the snapshot was taken from are
// rejected by it.
func Restore[E comparable](s Snapshot[E]) (*Forest[E], error) {
	n := len(s.Elements)
	if len(s.Parents) != n || len(s.Sizes) != n {
		return nil, fmt.Errorf("%d elements, %d parents, %d sizes: %w",
			n, len(s.Parents), len(s.Sizes), ErrCorruptSnapshot)
	}

	f := NewForest[E]()
	for i, e := range s.Elements {
		if _, ok := f.index.Get(e); ok {
			return nil, fmt.Errorf("element %v listed twice: %w", e, ErrCorruptSnapshot)
		}
		if p := s.Parents[i]; p < 0 || p >= n {
			return nil, fmt.Errorf("element %v has parent %d out of range: %w", e, p, ErrCorruptSnapshot)
		}
		f.index.Put(e, i)
	}

	rootOf := make([]int, n)
	for i := range rootOf {
		rootOf[i] = -1
	}
	counts := make([]int, n)
	for i := 0; i < n; i++ {
		var path []int
		j := i
		for rootOf[j] < 0 && s.Parents[j] != j {
			path = append(path, j)
			if len(path) > n {
				return nil, fmt.Errorf("element %v is on a parent cycle: %w", s.Elements[i], ErrCorruptSnapshot)
			}
			j = s.Parents[j]
		}
		root := rootOf[j]
		if root < 0 {
			root = j
			rootOf[j] = j
		}
		for _, p := range path {
			rootOf[p] = root
		}
		counts[root]++
	}
	for i := 0; i < n; i++ {
		if s.Parents[i] == i && s.Sizes[i] != counts[i] {
			return nil, fmt.Errorf("root %v records size %d but has %d members: %w",
				s.Elements[i], s.Sizes[i], counts[i], ErrCorruptSnapshot)
		}
	}

	f.values = append([]E(nil), s.Elements...)
	f.parent = append([]int(nil), s.Parents...)
	f.size = make([]int, n)
	for i := range f.size {
		if s.Parents[i] == i {
			f.size[i] = counts[i]
		}
	}
	return f, nil
}

// MarshalJSON implements json.Marshaler interface
func (f *Forest[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Snapshot())
}

// UnmarshalJSON implements json.Unmarshaler interface. The forest is
// replaced by the decoded one and gets a map index and a new identity.
func (f *Forest[E]) UnmarshalJSON(data []byte) error {
	var s Snapshot[E]
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	restored, err := Restore(s)
	if err != nil {
		return err
	}
	*f = *restored
	return nil
}
