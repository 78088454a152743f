package models

// NamedCount is a label with the number of clashes it participates in.
type NamedCount struct {
	Name    string `json:"name"`
	Clashes int    `json:"clashes"`
}

// DayCount is the number of clashes on one weekday.
type DayCount struct {
	Day     string `json:"day"`
	Clashes int    `json:"clashes"`
}

// ClashSeverity buckets clashes into rough severity bands.
type ClashSeverity struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ClashAnalytics summarises a clash list for dashboards.
type ClashAnalytics struct {
	TotalClashes    int           `json:"total_clashes"`
	ClashesByType   []NamedCount  `json:"clashes_by_type"`
	ClashesByDay    []DayCount    `json:"clashes_by_day"`
	BusiestTeachers []NamedCount  `json:"busiest_teachers"`
	BusiestRooms    []NamedCount  `json:"busiest_rooms"`
	BusiestYears    []NamedCount  `json:"busiest_years"`
	Severity        ClashSeverity `json:"severity"`
}
