package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/meur/arena/internal/filter"
)

// ErrUnknownStatus is returned for a status label with no mapping
var ErrUnknownStatus = errors.New("unknown tournament status")

// Status is the normalized lifecycle state of a tournament
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

// AllStatuses lists the statuses in lifecycle order
var AllStatuses = []Status{StatusUpcoming, StatusLive, StatusCompleted}

// Labels used by the listing and landing pages fold into the three states.
var statusAliases = map[string]Status{
	"upcoming":          StatusUpcoming,
	"registration open": StatusUpcoming,
	"coming soon":       StatusUpcoming,
	"live":              StatusLive,
	"ongoing":           StatusLive,
	"completed":         StatusCompleted,
	"finished":          StatusCompleted,
}

// ParseStatus maps a status label, in any case, to a Status
func ParseStatus(label string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if s, ok := statusAliases[key]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, label)
}

// Label returns the display text for s
func (s Status) Label() string {
	switch s {
	case StatusUpcoming:
		return "Upcoming"
	case StatusLive:
		return "Live"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// UnmarshalText accepts any known label so seed files may use either vocabulary
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// StatusOption converts raw filter input into a status constraint. Empty
// input and "all" impose none; anything else must be a known label.
func StatusOption(raw string) (filter.Option, error) {
	label, ok := filter.ParseOption(strings.TrimSpace(raw)).Get()
	if !ok {
		return filter.Any(), nil
	}
	s, err := ParseStatus(label)
	if err != nil {
		return filter.Any(), err
	}
	return filter.Only(string(s)), nil
}
