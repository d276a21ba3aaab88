package disjoint_set

// Index maps registered elements to their node in the forest arena.
type Index[E comparable] interface {
	// Get returns the arena index recorded for e.
	Get(e E) (int, bool)
	// Put records i as the arena index of e, replacing any previous entry.
	Put(e E, i int)
	// Len returns the number of recorded elements. A forest built on the
	// index expects it to match the forest's Len.
	Len() int
}

// MapIndex is the default Index, backed by a Go map.
type MapIndex[E comparable] struct {
	m map[E]int
}

// NewMapIndex creates an empty MapIndex.
func NewMapIndex[E comparable]() *MapIndex[E] {
	return &MapIndex[E]{m: make(map[E]int)}
}

func (x *MapIndex[E]) Get(e E) (int, bool) {
	i, ok := x.m[e]
	return i, ok
}

func (x *MapIndex[E]) Put(e E, i int) {
	x.m[e] = i
}

func (x *MapIndex[E]) Len() int {
	return len(x.m)
}
