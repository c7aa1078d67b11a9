package domain

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed habits.json
var defaultCatalogJSON []byte

// Catalog is the fixed list of predefined habits, indexed by ID.
type Catalog struct {
	habits []Habit
	byID   map[string]Habit
}

func NewCatalog(habits []Habit) (*Catalog, error) {
	c := &Catalog{
		habits: make([]Habit, 0, len(habits)),
		byID:   make(map[string]Habit, len(habits)),
	}

	for _, h := range habits {
		if err := h.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[h.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate habit id %q", ErrInvalidHabit, h.ID)
		}
		c.byID[h.ID] = h
		c.habits = append(c.habits, h)
	}

	return c, nil
}

// LoadCatalog parses a JSON array of habits.
func LoadCatalog(data []byte) (*Catalog, error) {
	var habits []Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		return nil, fmt.Errorf("%w: malformed catalog: %v", ErrInvalidHabit, err)
	}
	return NewCatalog(habits)
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(defaultCatalogJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded habit catalog is invalid: %v", err))
	}
	return c
}

// All returns a copy of the catalog in definition order.
func (c *Catalog) All() []Habit {
	out := make([]Habit, len(c.habits))
	copy(out, c.habits)
	return out
}

func (c *Catalog) Get(id string) (Habit, bool) {
	h, ok := c.byID[id]
	return h, ok
}

func (c *Catalog) Len() int {
	return len(c.habits)
}
