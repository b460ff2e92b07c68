// Package filter implements the directory search/filter model shared by the
// tournament, player and team listings: a pure per-record predicate and an
// order-preserving projection of a catalog.
package filter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedDimension is returned when a State constrains a dimension
// the record type does not carry.
var ErrUnsupportedDimension = errors.New("unsupported filter dimension")

// Dimension names a category field records can be filtered on
type Dimension string

const (
	Game    Dimension = "game"
	Status  Dimension = "status"
	Country Dimension = "country"
)

// Dimensions lists every known dimension in display order
var Dimensions = []Dimension{Game, Status, Country}

// Record is implemented by every catalog entry.
//
// Values must report ok=false for a dimension the type never carries,
// regardless of the receiver's contents, so support can be checked on a
// zero value.
type Record interface {
	Key() string
	SearchFields() []string
	Values(d Dimension) (values []string, ok bool)
}

// State is the user-chosen search text and category selections
type State struct {
	Search  string `json:"search"`
	Game    Option `json:"game"`
	Status  Option `json:"status"`
	Country Option `json:"country"`
}

// Option returns the selection for a dimension
func (s State) Option(d Dimension) Option {
	switch d {
	case Game:
		return s.Game
	case Status:
		return s.Status
	case Country:
		return s.Country
	}
	return Any()
}

// With returns a copy of s with dimension d set to o
func (s State) With(d Dimension, o Option) State {
	switch d {
	case Game:
		s.Game = o
	case Status:
		s.Status = o
	case Country:
		s.Country = o
	}
	return s
}

// ClearCategories returns a copy of s keeping only the search text
func (s State) ClearCategories() State {
	return State{Search: s.Search}
}

// IsDefault reports whether s imposes no constraint at all
func (s State) IsDefault() bool {
	return s == State{}
}

// Supported reports which dimensions a record type carries
func Supported[T Record]() []Dimension {
	var zero T
	var out []Dimension
	for _, d := range Dimensions {
		if _, ok := zero.Values(d); ok {
			out = append(out, d)
		}
	}
	return out
}

// Validate checks that every set dimension in s exists on T
func Validate[T Record](s State) error {
	var zero T
	for _, d := range Dimensions {
		if !s.Option(d).IsSet() {
			continue
		}
		if _, ok := zero.Values(d); !ok {
			return fmt.Errorf("%w: %s", ErrUnsupportedDimension, d)
		}
	}
	return nil
}

// Match is the predicate: r is included iff it satisfies the search text and
// every set dimension. A dimension r cannot answer never matches.
func Match[T Record](r T, s State) bool {
	if !matchSearch(r.SearchFields(), s.Search) {
		return false
	}
	for _, d := range Dimensions {
		want, ok := s.Option(d).Get()
		if !ok {
			continue
		}
		values, ok := r.Values(d)
		if !ok || !contains(values, want) {
			return false
		}
	}
	return true
}

// Project returns the records matching s in their original order. The input
// slice is not modified and the result is never nil.
func Project[T Record](records []T, s State) ([]T, error) {
	if err := Validate[T](s); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if Match(r, s) {
			out = append(out, r)
		}
	}
	return out, nil
}

func matchSearch(fields []string, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// empty values never match, even against an empty constraint
func contains(values []string, want string) bool {
	for _, v := range values {
		if v != "" && v == want {
			return true
		}
	}
	return false
}
