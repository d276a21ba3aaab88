// Package scenario reads batches of partition operations from TOML files
// and replays them against a Partitioner.
package scenario

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/FrenchMajesty/partition"
	"github.com/FrenchMajesty/partition/utils/disjoint_set"
)

// Pair names two elements.
type Pair struct {
	A string `toml:"a"`
	B string `toml:"b"`
}

// Check asserts whether two elements end up in the same class.
type Check struct {
	A         string `toml:"a"`
	B         string `toml:"b"`
	Connected bool   `toml:"connected"`
}

// Scenario is the content of a scenario file:
//
//	elements = ["a", "b", "c"]
//
//	[[union]]
//	a = "a"
//	b = "b"
//
//	[[check]]
//	a = "a"
//	b = "c"
//	connected = false
type Scenario struct {
	Elements []string `toml:"elements"`
	Unions   []Pair   `toml:"union"`
	Checks   []Check  `toml:"check"`
}

// Report summarizes a scenario run.
type Report struct {
	// Added counts elements that were not registered before the run.
	Added int
	// Merged counts unions that joined two distinct classes.
	Merged int
	// Failed lists the checks whose expectation did not hold.
	Failed []Check
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates scenario TOML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	for i, u := range s.Unions {
		if u.A == "" || u.B == "" {
			return nil, fmt.Errorf("union %d: both a and b are required", i+1)
		}
	}
	for i, c := range s.Checks {
		if c.A == "" || c.B == "" {
			return nil, fmt.Errorf("check %d: both a and b are required", i+1)
		}
	}
	return &s, nil
}

// Run registers the scenario's elements, applies its unions in order and
// evaluates its checks. Elements that are already registered are kept.
func (s *Scenario) Run(p *partition.Partitioner) (*Report, error) {
	report := &Report{}

	for _, e := range s.Elements {
		err := p.Add(e)
		switch {
		case err == nil:
			report.Added++
		case errors.Is(err, disjoint_set.ErrDuplicate):
		default:
			return nil, fmt.Errorf("adding %q: %w", e, err)
		}
	}

	for _, u := range s.Unions {
		connected, err := p.Connected(u.A, u.B)
		if err != nil {
			return nil, fmt.Errorf("union %s %s: %w", u.A, u.B, err)
		}
		if _, err := p.Union(u.A, u.B); err != nil {
			return nil, fmt.Errorf("union %s %s: %w", u.A, u.B, err)
		}
		if !connected {
			report.Merged++
		}
	}

	for _, c := range s.Checks {
		connected, err := p.Connected(c.A, c.B)
		if err != nil {
			return nil, fmt.Errorf("check %s %s: %w", c.A, c.B, err)
		}
		if connected != c.Connected {
			report.Failed = append(report.Failed, c)
		}
	}
	return report, nil
}
