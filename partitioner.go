// Package partition keeps a persistent, concurrency-safe partition of string
// elements into equivalence classes.
package partition

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/FrenchMajesty/partition/pkg/persistence"
	"github.com/FrenchMajesty/partition/utils/disjoint_set"
	"go.uber.org/zap"
)

// Partitioner wraps a disjoint-set forest with locking, persistence and
// metrics. Find compresses paths, so every operation takes the same
// exclusive lock.
type Partitioner struct {
	persist      persistence.ForestPersistence
	logger       *zap.Logger
	autoRegister bool

	mu     sync.Mutex
	forest *disjoint_set.Forest[string]
	closed bool
	saved  bool

	// Metrics tracking, guarded by mu
	finds  int
	unions int
	merges int
}

// New creates a Partitioner and loads its forest from the configured persistence.
func New(cfg Config) (*Partitioner, error) {
	cfg.applyDefaults()

	forest, err := cfg.Persistence.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load forest: %w", err)
	}

	cfg.Logger.Debug("forest loaded",
		zap.Int("elements", forest.Len()),
		zap.Int("classes", forest.CountSets()))

	return &Partitioner{
		persist:      cfg.Persistence,
		logger:       cfg.Logger,
		autoRegister: cfg.AutoRegister,
		forest:       forest,
	}, nil
}

func normalize(element string) (string, error) {
	element = strings.TrimSpace(element)
	if element == "" {
		return "", ErrEmptyElement
	}
	return element, nil
}

// normalizePair rejects the call before either element can be registered.
func normalizePair(a, b string) (string, string, error) {
	a, err := normalize(a)
	if err != nil {
		return "", "", err
	}
	b, err = normalize(b)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

// Add registers each element as a singleton class. Either all elements are
// added or, on error, none are.
func (p *Partitioner) Add(elements ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	batch := make([]string, 0, len(elements))
	seen := make(map[string]bool, len(elements))
	for _, e := range elements {
		e, err := normalize(e)
		if err != nil {
			return err
		}
		if seen[e] || p.forest.Contains(e) {
			return fmt.Errorf("element %s: %w", e, disjoint_set.ErrDuplicate)
		}
		seen[e] = true
		batch = append(batch, e)
	}

	for _, e := range batch {
		if _, err := p.forest.MakeSet(e); err != nil {
			return err
		}
	}
	p.logger.Debug("elements added", zap.Strings("elements", batch))
	return nil
}

// find resolves a normalized element to its root (internal, caller must hold mu)
func (p *Partitioner) find(element string) (disjoint_set.Handle[string], error) {
	p.finds++
	if p.autoRegister && !p.forest.Contains(element) {
		p.logger.Debug("auto-registering element", zap.String("element", element))
		return p.forest.MakeSet(element)
	}
	return p.forest.Find(element)
}

// Find returns the representative of the class containing element.
func (p *Partitioner) Find(element string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return "", ErrClosed
	}
	element, err := normalize(element)
	if err != nil {
		return "", err
	}
	root, err := p.find(element)
	if err != nil {
		return "", err
	}
	return root.Element(), nil
}

// Union merges the classes containing a and b and returns the representative
// of the merged class.
func (p *Partitioner) Union(a, b string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return "", ErrClosed
	}
	a, b, err := normalizePair(a, b)
	if err != nil {
		return "", err
	}
	s, err := p.find(a)
	if err != nil {
		return "", err
	}
	t, err := p.find(b)
	if err != nil {
		return "", err
	}

	if err := p.forest.Union(s, t); err != nil {
		return "", err
	}
	p.unions++

	root := t
	if s != t {
		p.merges++
		// t absorbed s unless s was the larger class.
		if root, err = p.forest.Find(t.Element()); err != nil {
			return "", err
		}
		p.logger.Debug("classes merged",
			zap.String("a", a),
			zap.String("b", b),
			zap.String("representative", root.Element()))
	}
	return root.Element(), nil
}

// Connected reports whether a and b belong to the same class.
func (p *Partitioner) Connected(a, b string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false, ErrClosed
	}
	a, b, err := normalizePair(a, b)
	if err != nil {
		return false, err
	}
	s, err := p.find(a)
	if err != nil {
		return false, err
	}
	t, err := p.find(b)
	if err != nil {
		return false, err
	}
	return s == t, nil
}

// ClassSize returns the number of elements in the class containing element.
func (p *Partitioner) ClassSize(element string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0, ErrClosed
	}
	element, err := normalize(element)
	if err != nil {
		return 0, err
	}
	root, err := p.find(element)
	if err != nil {
		return 0, err
	}
	return p.forest.Size(root)
}

// Classes returns every class with its members sorted. Classes are ordered
// by their first member. It keeps answering from memory after Close.
func (p *Partitioner) Classes() [][]string {
	p.mu.Lock()
	defer p.mu.Unlock()

	components := p.forest.Components()
	classes := make([][]string, 0, len(components))
	for _, members := range components {
		sort.Strings(members)
		classes = append(classes, members)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i][0] < classes[j][0]
	})
	return classes
}

// Metrics returns current partition metrics. Like Classes, it is still
// available after Close.
func (p *Partitioner) Metrics() Metrics {
	p.mu.Lock()
	defer p.mu.Unlock()

	m := Metrics{
		Elements: p.forest.Len(),
		Finds:    p.finds,
		Unions:   p.unions,
		Merges:   p.merges,
	}
	for _, members := range p.forest.Components() {
		m.Classes++
		if len(members) > m.LargestClass {
			m.LargestClass = len(members)
		}
	}
	return m
}

// Save writes the current forest to persistent storage.
func (p *Partitioner) Save() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	return p.save()
}

// save persists the forest (internal, caller must hold mu)
func (p *Partitioner) save() error {
	if err := p.persist.Save(p.forest); err != nil {
		p.logger.Error("failed to save forest", zap.Error(err))
		return err
	}
	p.logger.Debug("forest saved", zap.Int("elements", p.forest.Len()))
	return nil
}

// Close saves the forest. Afterwards Add, Find, Union, Connected, ClassSize
// and Save fail with ErrClosed. If the save fails Close returns the error and
// a later Close tries again; once a save succeeds further calls are no-ops.
func (p *Partitioner) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.saved {
		return nil
	}
	if err := p.save(); err != nil {
		return err
	}
	p.saved = true
	return nil
}
