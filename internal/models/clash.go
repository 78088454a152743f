package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ClashType tags the dimension two overlapping entries share.
type ClashType string

const (
	ClashTypeTeacher ClashType = "Teacher Clash"
	ClashTypeRoom    ClashType = "Room Clash"
	ClashTypeYear    ClashType = "Year Clash"
)

// Label returns the display name, falling back to a generic tag for untyped clashes.
func (t ClashType) Label() string {
	if t == "" {
		return "Clash"
	}
	return string(t)
}

// Clash is one conflicting pair on one dimension. Entries[0] precedes Entries[1] in scan order.
type Clash struct {
	Type    ClashType `json:"type"`
	Day     string    `json:"day"`
	Entries []Entry   `json:"entries"`
}

// EntryList persists entries as a JSONB column.
type EntryList []Entry

// Value marshals the list for persistence.
func (l EntryList) Value() (driver.Value, error) {
	return marshalJSONColumn(l, "entries")
}

// Scan unmarshals a JSON column into the list.
func (l *EntryList) Scan(value interface{}) error {
	return scanJSONColumn(value, l, "entries")
}

// ClashList persists clashes as a JSONB column.
type ClashList []Clash

// Value marshals the list for persistence.
func (l ClashList) Value() (driver.Value, error) {
	return marshalJSONColumn(l, "clashes")
}

// Scan unmarshals a JSON column into the list.
func (l *ClashList) Scan(value interface{}) error {
	return scanJSONColumn(value, l, "clashes")
}

func marshalJSONColumn(v interface{}, name string) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", name, err)
	}
	if string(data) == "null" {
		return []byte("[]"), nil
	}
	return data, nil
}

func scanJSONColumn(value interface{}, dest interface{}, name string) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for %s", value, name)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return nil
}
