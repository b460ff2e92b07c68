// Package catalog holds immutable, ordered snapshots of directory records.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/meur/arena/internal/filter"
	"github.com/meur/arena/internal/models"
)

var (
	ErrEmptyID     = errors.New("record id is empty")
	ErrDuplicateID = errors.New("duplicate record id")
)

type validator interface {
	Validate() error
}

// Catalog is an ordered snapshot of records of one type. It never changes
// after construction and is safe for concurrent readers.
type Catalog[T filter.Record] struct {
	id      string
	records []T
	index   map[string]int
}

// New validates records and snapshots them in the given order
func New[T filter.Record](records []T) (*Catalog[T], error) {
	c := &Catalog[T]{
		id:      uuid.NewString(),
		records: slices.Clone(records),
		index:   make(map[string]int, len(records)),
	}
	for i, r := range c.records {
		key := r.Key()
		if key == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyID)
		}
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, key)
		}
		if v, ok := any(r).(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, err
			}
		}
		c.index[key] = i
	}
	return c, nil
}

// ID identifies this snapshot; a reloaded catalog gets a new one
func (c *Catalog[T]) ID() string {
	return c.id
}

// Len returns the number of records
func (c *Catalog[T]) Len() int {
	return len(c.records)
}

// Records returns a copy of the records in catalog order
func (c *Catalog[T]) Records() []T {
	return slices.Clone(c.records)
}

// Find returns the record with the given id
func (c *Catalog[T]) Find(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.records[i], true
}

// Project applies s to the whole catalog
func (c *Catalog[T]) Project(s filter.State) ([]T, error) {
	return filter.Project(c.records, s)
}

// Suggest returns fuzzy name matches for search
func (c *Catalog[T]) Suggest(search string, limit int) []string {
	return filter.Suggest(c.records, search, limit)
}

// Set groups the three directory catalogs
type Set struct {
	Tournaments *Catalog[models.Tournament]
	Players     *Catalog[models.Player]
	Teams       *Catalog[models.Team]
}

// NewSet builds catalogs from a bundle
func NewSet(b models.Bundle) (*Set, error) {
	tournaments, err := New(b.Tournaments)
	if err != nil {
		return nil, fmt.Errorf("tournaments: %w", err)
	}

	players := make([]models.Player, len(b.Players))
	for i, p := range b.Players {
		players[i] = p.Normalized()
	}
	playerCatalog, err := New(players)
	if err != nil {
		return nil, fmt.Errorf("players: %w", err)
	}

	teams := make([]models.Team, len(b.Teams))
	for i, t := range b.Teams {
		teams[i] = t.Normalized()
	}
	teamCatalog, err := New(teams)
	if err != nil {
		return nil, fmt.Errorf("teams: %w", err)
	}

	return &Set{
		Tournaments: tournaments,
		Players:     playerCatalog,
		Teams:       teamCatalog,
	}, nil
}

// AssignIDs gives every record without an id a fresh one
func AssignIDs(b *models.Bundle) {
	for i := range b.Tournaments {
		if b.Tournaments[i].ID == "" {
			b.Tournaments[i].ID = uuid.NewString()
		}
	}
	for i := range b.Players {
		if b.Players[i].ID == "" {
			b.Players[i].ID = uuid.NewString()
		}
	}
	for i := range b.Teams {
		if b.Teams[i].ID == "" {
			b.Teams[i].ID = uuid.NewString()
		}
	}
}
