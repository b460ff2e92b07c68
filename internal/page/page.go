// Package page models the state a listing page owns: one catalog, the
// current filter selections and the projection derived from them.
//
// Pages are single-owner values and are not safe for concurrent use.
package page

import (
	"github.com/meur/arena/internal/catalog"
	"github.com/meur/arena/internal/filter"
)

// Page couples a catalog with its filter state
type Page[T filter.Record] struct {
	catalog *catalog.Catalog[T]
	state   filter.State
}

// New returns a page over c with default filter state
func New[T filter.Record](c *catalog.Catalog[T]) *Page[T] {
	return &Page[T]{catalog: c}
}

// State returns the current filter state
func (p *Page[T]) State() filter.State {
	return p.state
}

// Catalog returns the catalog the page displays
func (p *Page[T]) Catalog() *catalog.Catalog[T] {
	return p.catalog
}

// SetSearch sets the search text
func (p *Page[T]) SetSearch(text string) {
	p.state.Search = text
}

// SetGame sets the game selection
func (p *Page[T]) SetGame(o filter.Option) {
	p.state.Game = o
}

// SetStatus sets the status selection
func (p *Page[T]) SetStatus(o filter.Option) {
	p.state.Status = o
}

// SetCountry sets the country selection
func (p *Page[T]) SetCountry(o filter.Option) {
	p.state.Country = o
}

// Set updates one category dimension
func (p *Page[T]) Set(d filter.Dimension, o filter.Option) {
	p.state = p.state.With(d, o)
}

// Reset restores the default state
func (p *Page[T]) Reset() {
	p.state = filter.State{}
}

// Supports reports whether the page's record type has dimension d
func (p *Page[T]) Supports(d filter.Dimension) bool {
	for _, s := range filter.Supported[T]() {
		if s == d {
			return true
		}
	}
	return false
}

// View recomputes the projection from the full catalog
func (p *Page[T]) View() ([]T, error) {
	return p.catalog.Project(p.state)
}

// Find looks up a record for the details view
func (p *Page[T]) Find(id string) (T, bool) {
	return p.catalog.Find(id)
}
