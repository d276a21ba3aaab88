// Package disjoint_set implements a disjoint-set (union-find) forest with
// path compression and union by size.
//
// Elements are registered with MakeSet and identified afterwards either by
// value (Find) or by the Handle returned from MakeSet and Find. A Forest is
// not safe for concurrent use: Find relinks parent pointers, so even queries
// mutate the forest. Callers sharing a Forest between goroutines must hold
// one lock around every operation.
package disjoint_set

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle identifies a node of the Forest that created it.
type Handle[E comparable] struct {
	forest uuid.UUID
	index  int
	elem   E
}

// Element returns the element stored in the node.
func (h Handle[E]) Element() E {
	return h.elem
}

// IsZero reports whether h is the zero Handle, which no forest accepts.
func (h Handle[E]) IsZero() bool {
	return h.forest == uuid.Nil
}

// Forest is a disjoint-set forest over elements of type E.
// The zero value is an empty forest ready to use.
type Forest[E comparable] struct {
	id     uuid.UUID
	values []E
	parent []int
	// size is only meaningful for roots, read it through rootSize.
	size  []int
	index Index[E]
}

// NewForest creates an empty forest backed by a map index.
func NewForest[E comparable]() *Forest[E] {
	return NewForestWithIndex[E](nil)
}

// NewForestWithIndex creates an empty forest that records membership in idx.
// idx must be empty. A nil idx selects the default map index.
func NewForestWithIndex[E comparable](idx Index[E]) *Forest[E] {
	if idx == nil {
		idx = NewMapIndex[E]()
	}
	return &Forest[E]{
		id:    uuid.New(),
		index: idx,
	}
}

func (f *Forest[E]) lazyInit() {
	if f.id == uuid.Nil {
		f.id = uuid.New()
	}
	if f.index == nil {
		f.index = NewMapIndex[E]()
	}
}

// lookup returns the arena index of e.
func (f *Forest[E]) lookup(e E) (int, bool) {
	if f.index == nil {
		return 0, false
	}
	return f.index.Get(e)
}

func (f *Forest[E]) handle(i int) Handle[E] {
	return Handle[E]{forest: f.id, index: i, elem: f.values[i]}
}

// MakeSet registers e as a new singleton class and returns its handle.
// Registering an element twice fails with ErrDuplicate.
func (f *Forest[E]) MakeSet(e E) (Handle[E], error) {
	f.lazyInit()
	if _, ok := f.index.Get(e); ok {
		return Handle[E]{}, fmt.Errorf("element %v: %w", e, ErrDuplicate)
	}
	return f.handle(f.add(e)), nil
}

// add appends a singleton root for e (internal, caller checks for duplicates)
func (f *Forest[E]) add(e E) int {
	i := len(f.values)
	f.values = append(f.values, e)
	f.parent = append(f.parent, i)
	f.size = append(f.size, 1)
	f.index.Put(e, i)
	return i
}

// Find returns the handle of the root of the class containing e. Every node
// visited on the way is relinked directly to the root.
func (f *Forest[E]) Find(e E) (Handle[E], error) {
	i, ok := f.lookup(e)
	if !ok {
		return Handle[E]{}, fmt.Errorf("element %v: %w", e, ErrNotFound)
	}
	return f.handle(f.find(i)), nil
}

// find walks to the root of i, then points every node on the path at it.
func (f *Forest[E]) find(i int) int {
	root := i
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for i != root {
		i, f.parent[i] = f.parent[i], root
	}
	return root
}

// Union merges the classes rooted at s and t. Both handles must name current
// roots of f; Union does not walk to the root on the caller's behalf.
// The root of the smaller class is attached under the other one. On equal
// sizes t survives.
func (f *Forest[E]) Union(s, t Handle[E]) error {
	if err := f.validate(s); err != nil {
		return err
	}
	if err := f.validate(t); err != nil {
		return err
	}
	if s.index == t.index {
		return nil
	}
	sizeS, err := f.rootSize(s.index)
	if err != nil {
		return err
	}
	sizeT, err := f.rootSize(t.index)
	if err != nil {
		return err
	}

	child, root := s.index, t.index
	if sizeS > sizeT {
		child, root = t.index, s.index
	}
	f.parent[child] = root
	f.size[root] = sizeS + sizeT
	return nil
}

// validate checks that h was produced by f.
func (f *Forest[E]) validate(h Handle[E]) error {
	if h.IsZero() || h.forest != f.id {
		return fmt.Errorf("handle for %v from another forest: %w", h.elem, ErrInvalidHandle)
	}
	if h.index < 0 || h.index >= len(f.values) {
		return fmt.Errorf("handle index %d out of range: %w", h.index, ErrInvalidHandle)
	}
	return nil
}

func (f *Forest[E]) isRoot(i int) bool {
	return f.parent[i] == i
}

// rootSize is the only reader of size.
func (f *Forest[E]) rootSize(i int) (int, error) {
	if !f.isRoot(i) {
		return 0, fmt.Errorf("element %v: %w", f.values[i], ErrNotRoot)
	}
	return f.size[i], nil
}

// Size returns the number of elements in the class rooted at h.
func (f *Forest[E]) Size(h Handle[E]) (int, error) {
	if err := f.validate(h); err != nil {
		return 0, err
	}
	return f.rootSize(h.index)
}

// Join finds the roots of a and b and merges their classes. It returns the
// root of the merged class.
func (f *Forest[E]) Join(a, b E) (Handle[E], error) {
	s, err := f.Find(a)
	if err != nil {
		return Handle[E]{}, err
	}
	t, err := f.Find(b)
	if err != nil {
		return Handle[E]{}, err
	}
	if err := f.Union(s, t); err != nil {
		return Handle[E]{}, err
	}
	return f.handle(f.find(t.index)), nil
}

// Connected reports whether a and b belong to the same class.
func (f *Forest[E]) Connected(a, b E) (bool, error) {
	s, err := f.Find(a)
	if err != nil {
		return false, err
	}
	t, err := f.Find(b)
	if err != nil {
		return false, err
	}
	return s.index == t.index, nil
}

// ClassSize returns the number of elements in the class containing e.
func (f *Forest[E]) ClassSize(e E) (int, error) {
	h, err := f.Find(e)
	if err != nil {
		return 0, err
	}
	return f.rootSize(h.index)
}

// Contains reports whether e has been registered.
func (f *Forest[E]) Contains(e E) bool {
	_, ok := f.lookup(e)
	return ok
}

// Len returns the number of registered elements.
func (f *Forest[E]) Len() int {
	return len(f.values)
}

// CountSets returns the number of disjoint classes.
func (f *Forest[E]) CountSets() int {
	n := 0
	for i := range f.parent {
		if f.isRoot(i) {
			n++
		}
	}
	return n
}

// Elements returns all registered elements in registration order.
func (f *Forest[E]) Elements() []E {
	elems := make([]E, len(f.values))
	copy(elems, f.values)
	return elems
}

// Components groups the elements by class, keyed by each class's
// representative. Members are listed in registration order.
func (f *Forest[E]) Components() map[E][]E {
	groups := make(map[E][]E)
	for i, e := range f.values {
		root := f.values[f.find(i)]
		groups[root] = append(groups[root], e)
	}
	return groups
}
