package models

// DailySummary is computed on demand and never persisted. TargetCalories is
// the target derived from the current profile, even for historical days.
type DailySummary struct {
	Date           string `json:"date"`
	TotalCalories  int    `json:"totalCalories"`
	TargetCalories int    `json:"targetCalories"`
}

// DayTotal is one point of the rolling consumption chart.
type DayTotal struct {
	Day      string `json:"day"`
	Label    string `json:"label"` // abbreviated weekday, e.g. "Mon"
	Consumed int    `json:"consumed"`
	Target   int    `json:"target"`
}

// Dashboard carries everything the landing view shows for a single day.
type Dashboard struct {
	Date      string           `json:"date"`
	Target    int              `json:"target"`
	Consumed  int              `json:"consumed"`
	Remaining int              `json:"remaining"` // never negative
	Percent   int              `json:"percent"`   // capped at 100
	ByMeal    map[MealType]int `json:"by_meal"`
	Recent    []LogEntry       `json:"recent"` // newest first, at most three
}
