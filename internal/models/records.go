package models

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/meur/arena/internal/filter"
)

// ErrNegativeCount is returned when a counter field is below zero
var ErrNegativeCount = errors.New("count must not be negative")

// Tournament represents a listed tournament
type Tournament struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Game         string    `json:"game"`
	StartDate    time.Time `json:"start_date"`
	PrizePool    string    `json:"prize_pool"`
	Participants int       `json:"participants"`
	Status       Status    `json:"status"`
}

// Player represents a player profile in the directory
type Player struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	DisplayName  string   `json:"display_name"`
	Country      string   `json:"country"`
	Games        []string `json:"games"`
	Rank         string   `json:"rank"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Verified     bool     `json:"verified"`
	Achievements []string `json:"achievements"`
}

// Team represents a team profile in the directory
type Team struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Game         string   `json:"game"`
	Country      string   `json:"country"`
	Members      int      `json:"members"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Verified     bool     `json:"verified"`
	Achievements []string `json:"achievements"`
}

var (
	_ filter.Record = Tournament{}
	_ filter.Record = Player{}
	_ filter.Record = Team{}
)

// --- Tournament ---

// Key returns the tournament id
func (t Tournament) Key() string { return t.ID }

// SearchFields lists the text the tournament search matches against
func (t Tournament) SearchFields() []string { return []string{t.Name} }

// Values returns the tournament field behind dimension d
func (t Tournament) Values(d filter.Dimension) ([]string, bool) {
	switch d {
	case filter.Game:
		return []string{t.Game}, true
	case filter.Status:
		return []string{string(t.Status)}, true
	}
	return nil, false
}

// Validate checks the record invariants
func (t Tournament) Validate() error {
	if t.Participants < 0 {
		return fmt.Errorf("tournament %s participants: %w", t.ID, ErrNegativeCount)
	}
	if !slices.Contains(AllStatuses, t.Status) {
		return fmt.Errorf("tournament %s status: %w: %q", t.ID, ErrUnknownStatus, t.Status)
	}
	return nil
}

// --- Player ---

// Key returns the player id
func (p Player) Key() string { return p.ID }

// SearchFields lists the text the player search matches against
func (p Player) SearchFields() []string { return []string{p.Username, p.DisplayName} }

// Values returns the player field behind dimension d
func (p Player) Values(d filter.Dimension) ([]string, bool) {
	switch d {
	case filter.Game:
		return p.Games, true
	case filter.Country:
		return []string{p.Country}, true
	}
	return nil, false
}

// Validate checks the record invariants
func (p Player) Validate() error {
	return validateRecord("player", p.ID, p.Wins, p.Losses)
}

// WinRate returns wins over games played, or 0 with no games
func (p Player) WinRate() float64 {
	return winRate(p.Wins, p.Losses)
}

// Normalized returns p with nil slices replaced by empty ones
func (p Player) Normalized() Player {
	p.Games = nonNil(p.Games)
	p.Achievements = nonNil(p.Achievements)
	return p
}

// --- Team ---

// Key returns the team id
func (t Team) Key() string { return t.ID }

// SearchFields lists the text the team search matches against
func (t Team) SearchFields() []string { return []string{t.Name} }

// Values returns the team field behind dimension d
func (t Team) Values(d filter.Dimension) ([]string, bool) {
	switch d {
	case filter.Game:
		return []string{t.Game}, true
	case filter.Country:
		return []string{t.Country}, true
	}
	return nil, false
}

// Validate checks the record invariants
func (t Team) Validate() error {
	if t.Members < 0 {
		return fmt.Errorf("team %s members: %w", t.ID, ErrNegativeCount)
	}
	return validateRecord("team", t.ID, t.Wins, t.Losses)
}

// WinRate returns wins over games played, or 0 with no games
func (t Team) WinRate() float64 {
	return winRate(t.Wins, t.Losses)
}

// Normalized returns t with a nil achievements slice replaced by an empty one
func (t Team) Normalized() Team {
	t.Achievements = nonNil(t.Achievements)
	return t
}

func validateRecord(kind, id string, wins, losses int) error {
	if wins < 0 {
		return fmt.Errorf("%s %s wins: %w", kind, id, ErrNegativeCount)
	}
	if losses < 0 {
		return fmt.Errorf("%s %s losses: %w", kind, id, ErrNegativeCount)
	}
	return nil
}

func winRate(wins, losses int) float64 {
	played := wins + losses
	if played == 0 {
		return 0
	}
	return float64(wins) / float64(played)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
