package models

// MealType buckets log entries within a day.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnacks    MealType = "Snacks"
)

// MealTypes lists the meal buckets in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnacks}

// LogEntry is one logged food. Date is the calendar day key (YYYY-MM-DD) at
// creation time and is immutable afterwards; entries are never edited in
// place, only appended and deleted by id. Collection order is insertion
// order, not date order.
type LogEntry struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	MealType    MealType `json:"mealType" validate:"required,oneof=Breakfast Lunch Dinner Snacks"`
	FoodName    string   `json:"foodName" validate:"required"`
	Calories    int      `json:"calories" validate:"min=0"`
	ServingSize string   `json:"servingSize"`
}
