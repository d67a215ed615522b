package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// Catalog is an immutable table of descriptors keyed by id.
// It is safe for concurrent use.
type Catalog struct {
	byID   map[string]Descriptor
	byName []string // ids ordered by display name
}

// New validates descs and builds a catalog from them.
func New(descs ...Descriptor) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Descriptor, len(descs))}
	for _, d := range descs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, d.ID)
		}
		c.byID[d.ID] = d.clone()
		c.byName = append(c.byName, d.ID)
	}
	sort.SliceStable(c.byName, func(i, j int) bool {
		return c.byID[c.byName[i]].Name < c.byID[c.byName[j]].Name
	})
	return c, nil
}

// MustNew is New that panics on error. Used for compiled-in tables.
func MustNew(descs ...Descriptor) *Catalog {
	c, err := New(descs...)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in catalog. It is constructed once per process.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCat = MustNew(builtin()...)
	})
	return defaultCat
}

// Get returns a copy of the descriptor with the given id.
func (c *Catalog) Get(id string) (Descriptor, error) {
	d, ok := c.byID[id]
	if !ok {
		return Descriptor{}, &UnknownAlgorithmError{ID: id}
	}
	return d.clone(), nil
}

// IDs returns all ids in lexical order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns copies of every descriptor ordered by name.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.byName))
	for i, id := range c.byName {
		out[i] = c.byID[id].clone()
	}
	return out
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int { return len(c.byID) }
