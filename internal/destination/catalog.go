package destination

import (
	"log/slog"
	"slices"
	"strings"
)

// Catalog is an immutable, id-keyed set of destinations.
// It is safe for concurrent use because nothing mutates it after NewCatalog.
type Catalog struct {
	entries []Destination
	byID    map[string]int
}

// NewCatalog builds a Catalog from records. Records without an id are skipped
// and duplicate ids keep the first occurrence. Entries are ordered by id.
func NewCatalog(records []Destination, log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}

	entries := make([]Destination, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			log.Warn("catalog record without id skipped", "state", r.State)
			continue
		}
		if _, dup := seen[id]; dup {
			log.Warn("duplicate catalog id dropped", "id", id)
			continue
		}
		seen[id] = struct{}{}

		d := r.clone()
		d.ID = id
		entries = append(entries, d)
	}

	slices.SortFunc(entries, func(a, b Destination) int {
		return strings.Compare(a.ID, b.ID)
	})

	byID := make(map[string]int, len(entries))
	for i, d := range entries {
		byID[d.ID] = i
	}

	return &Catalog{entries: entries, byID: byID}
}

// Len returns the number of destinations.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns a copy of every destination ordered by id.
func (c *Catalog) All() []Destination {
	out := make([]Destination, len(c.entries))
	for i, d := range c.entries {
		out[i] = d.clone()
	}
	return out
}

// Get returns the destination with the given id.
func (c *Catalog) Get(id string) (Destination, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Destination{}, false
	}
	return c.entries[i].clone(), true
}

// IDs returns all ids in ascending order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, d := range c.entries {
		ids[i] = d.ID
	}
	return ids
}

// ByState returns the ids of destinations in the given state (case-insensitive).
func (c *Catalog) ByState(state string) []string {
	var ids []string
	for _, d := range c.entries {
		if strings.EqualFold(d.State, state) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// States returns the distinct states covered by the catalog, sorted.
func (c *Catalog) States() []string {
	states := make([]string, 0, len(c.entries))
	for _, d := range c.entries {
		states = append(states, d.State)
	}
	slices.Sort(states)
	return slices.Compact(states)
}
