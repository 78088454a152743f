package models

import "database/sql/driver"

// Fixed confidence scores attached to each remediation strategy.
const (
	ConfidenceRoomChange = 0.9
	ConfidenceReschedule = 0.8
	ConfidenceSwap       = 0.7
	ConfidenceManual     = 0.3
)

// SuggestionAction identifies which remediation strategy produced a suggestion.
type SuggestionAction string

const (
	SuggestionActionRoomChange SuggestionAction = "ROOM_CHANGE"
	SuggestionActionReschedule SuggestionAction = "RESCHEDULE"
	SuggestionActionSwap       SuggestionAction = "SWAP"
	SuggestionActionManual     SuggestionAction = "MANUAL"
)

// Suggestion proposes a remediation for the target entry of a clash.
type Suggestion struct {
	ClashType    ClashType        `json:"clashType"`
	Issue        string           `json:"issue"`
	Fix          string           `json:"fix"`
	Confidence   float64          `json:"confidence"`
	Action       SuggestionAction `json:"action"`
	TargetCourse string           `json:"targetCourse"`
	Room         string           `json:"room,omitempty"`
	Day          string           `json:"day,omitempty"`
	Start        string           `json:"start,omitempty"`
	End          string           `json:"end,omitempty"`
	SwapWith     string           `json:"swapWith,omitempty"`
}

// SuggestionList persists suggestions as a JSONB column.
type SuggestionList []Suggestion

// Value marshals the list for persistence.
func (l SuggestionList) Value() (driver.Value, error) {
	return marshalJSONColumn(l, "suggestions")
}

// Scan unmarshals a JSON column into the list.
func (l *SuggestionList) Scan(value interface{}) error {
	return scanJSONColumn(value, l, "suggestions")
}
