package filter

import (
	"encoding/json"
	"strings"
)

// AllValue is the value surfaces send to mean "no constraint".
const AllValue = "all"

// Option is a category selection. The zero value imposes no constraint.
type Option struct {
	value string
	set   bool
}

// Any returns an Option that matches every record
func Any() Option {
	return Option{}
}

// Only returns an Option constrained to v
func Only(v string) Option {
	return Option{value: v, set: true}
}

// ParseOption converts raw input into an Option. Empty input and "all"
// (any case) become Any; everything else is kept verbatim.
func ParseOption(raw string) Option {
	if raw == "" || strings.EqualFold(raw, AllValue) {
		return Any()
	}
	return Only(raw)
}

// Get returns the constrained value and whether one is set
func (o Option) Get() (string, bool) {
	return o.value, o.set
}

// IsSet reports whether the option constrains its dimension
func (o Option) IsSet() bool {
	return o.set
}

// String renders the option the way surfaces display it
func (o Option) String() string {
	if !o.set {
		return AllValue
	}
	return o.value
}

// MarshalJSON encodes Any as null and a set option as its value
func (o Option) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
