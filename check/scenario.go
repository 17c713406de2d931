package check

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/samthor/seqstore/seq"
)

// Scenario is a scripted list of steps with expected outcomes.
type Scenario struct {
	Name string `yaml:"name"`

	// Strategies restricts which strategies this runs against, by name.
	// Empty means all.
	Strategies []string `yaml:"strategies,omitempty"`

	// Initial values, if any.
	Initial []int64 `yaml:"initial,omitempty"`

	Steps []Step `yaml:"steps"`
}

// Step is an Op plus optional expectations.
type Step struct {
	Op `yaml:",inline"`

	Expect *int64  `yaml:"expect,omitempty"` // result of a query
	Values []int64 `yaml:"values,omitempty"` // whole sequence afterwards
	Error  bool    `yaml:"error,omitempty"`  // must fail with seq.ErrInvalidRange
}

// LoadScenario reads a YAML Scenario from path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes and validates a YAML Scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}

	for _, name := range sc.Strategies {
		if _, ok := seq.ParseStrategy(name); !ok {
			return nil, fmt.Errorf("unknown strategy: %q", name)
		}
	}
	for i, step := range sc.Steps {
		if !slices.Contains(Kinds, step.Kind) {
			return nil, fmt.Errorf("step %d: unknown op: %q", i, step.Kind)
		}
		if step.Expect != nil && !step.Kind.IsQuery() {
			return nil, fmt.Errorf("step %d: %s has no result to expect", i, step.Kind)
		}
	}
	return &sc, nil
}

// Selected returns the strategies this Scenario should run against.
func (sc *Scenario) Selected() []seq.Strategy {
	if len(sc.Strategies) == 0 {
		return []seq.Strategy{seq.Treap, seq.Splay}
	}
	out := make([]seq.Strategy, 0, len(sc.Strategies))
	for _, name := range sc.Strategies {
		s, _ := seq.ParseStrategy(name)
		out = append(out, s)
	}
	return out
}

// Replay runs every step against s, which should start empty.
// It stops at the first failed expectation.
func (sc *Scenario) Replay(s seq.Sequence[int64]) error {
	s.Append(sc.Initial...)

	for i, step := range sc.Steps {
		got, err := Apply(s, step.Op)

		if step.Error {
			if !errors.Is(err, seq.ErrInvalidRange) {
				return fmt.Errorf("step %d %v: expected invalid range, was err=%v", i, step.Op, err)
			}
		} else if err != nil {
			return fmt.Errorf("step %d %v: %w", i, step.Op, err)
		}

		if step.Expect != nil && got != *step.Expect {
			return fmt.Errorf("step %d %v: expected=%d, was=%d", i, step.Op, *step.Expect, got)
		}
		if step.Values != nil {
			if values := s.Values(); !slices.Equal(values, step.Values) {
				return fmt.Errorf("step %d %v: expected=%v, was=%v", i, step.Op, step.Values, values)
			}
		}
	}
	return nil
}
