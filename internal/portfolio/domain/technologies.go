package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Technologies is the ordered tag list of a project. It is stored as JSON
// array text and decoded back to the same order on read.
type Technologies []string

// Value encodes the list for the technologies column. A nil list is stored
// as an empty array.
func (t Technologies) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, fmt.Errorf("encode technologies: %w", err)
	}
	return string(b), nil
}

// Scan decodes the technologies column. NULL and blank text decode to an
// empty list.
func (t *Technologies) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = Technologies{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("decode technologies: unsupported type %T", src)
	}

	if strings.TrimSpace(raw) == "" {
		*t = Technologies{}
		return nil
	}

	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return fmt.Errorf("decode technologies: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*t = out
	return nil
}

// MarshalJSON keeps the API shape an array even for a nil list.
func (t Technologies) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}
