package catalogue

import (
	"fmt"
	"strings"
)

// DefaultWeight is applied to any symptom absent from the weight table.
const DefaultWeight = 1.0

// Condition is a predefined catalogue entry.
type Condition struct {
	ID       string   `json:"id"`
	Name     string   `json:"condition"`
	Symptoms []string `json:"symptoms"`
	Advice   string   `json:"advice"`
	Urgency  string   `json:"urgency"`
	Remedy   string   `json:"immediateRemedy"`
}

// Catalogue is the read-only condition table plus the symptom weight table.
// It is built once at start-up and shared by every request.
type Catalogue struct {
	conditions []Condition
	index      map[string]int
	keys       [][]string
	weights    map[string]float64
}

// New builds a Catalogue, rejecting duplicate condition IDs, duplicate weight
// keys (after lower-casing) and non-positive weights.
func New(conditions []Condition, weights map[string]float64) (*Catalogue, error) {
	c := &Catalogue{
		conditions: make([]Condition, 0, len(conditions)),
		index:      make(map[string]int, len(conditions)),
		keys:       make([][]string, 0, len(conditions)),
		weights:    make(map[string]float64, len(weights)),
	}

	for _, cond := range conditions {
		if cond.ID == "" {
			return nil, fmt.Errorf("condition %q has empty id", cond.Name)
		}
		if _, dup := c.index[cond.ID]; dup {
			return nil, fmt.Errorf("duplicate condition id %q", cond.ID)
		}
		if len(cond.Symptoms) == 0 {
			return nil, fmt.Errorf("condition %q has no symptoms", cond.ID)
		}

		cp := cond
		cp.Symptoms = append([]string(nil), cond.Symptoms...)
		keys := make([]string, len(cp.Symptoms))
		for i, s := range cp.Symptoms {
			keys[i] = strings.ToLower(s)
		}

		c.index[cp.ID] = len(c.conditions)
		c.conditions = append(c.conditions, cp)
		c.keys = append(c.keys, keys)
	}

	for label, w := range weights {
		key := strings.ToLower(label)
		if _, dup := c.weights[key]; dup {
			return nil, fmt.Errorf("duplicate weight key %q", key)
		}
		if w <= 0 {
			return nil, fmt.Errorf("weight for %q must be positive, got %v", key, w)
		}
		c.weights[key] = w
	}

	return c, nil
}

// Default returns the built-in catalogue. The built-in tables are validated by
// tests, so a failure here is a programming error.
func Default() *Catalogue {
	c, err := New(defaultConditions, defaultWeights)
	if err != nil {
		panic(fmt.Sprintf("catalogue: invalid built-in table: %v", err))
	}
	return c
}

// Conditions returns the entries in catalogue order.
func (c *Catalogue) Conditions() []Condition {
	out := make([]Condition, len(c.conditions))
	copy(out, c.conditions)
	return out
}

// Len returns the number of conditions.
func (c *Catalogue) Len() int {
	return len(c.conditions)
}

// Lookup returns the condition with the given id.
func (c *Catalogue) Lookup(id string) (Condition, bool) {
	i, ok := c.index[id]
	if !ok {
		return Condition{}, false
	}
	return c.conditions[i], true
}

// Weight returns the scoring weight of a normalized symptom label.
func (c *Catalogue) Weight(key string) float64 {
	if w, ok := c.weights[key]; ok {
		return w
	}
	return DefaultWeight
}

// Each calls fn for every condition in catalogue order along with its
// lower-cased symptom keys. Iteration stops when fn returns false.
func (c *Catalogue) Each(fn func(cond Condition, keys []string) bool) {
	for i, cond := range c.conditions {
		if !fn(cond, c.keys[i]) {
			return
		}
	}
}
