package models

// Bundle is the full set of directory records, used for seeding and import
type Bundle struct {
	Tournaments []Tournament `json:"tournaments"`
	Players     []Player     `json:"players"`
	Teams       []Team       `json:"teams"`
}
