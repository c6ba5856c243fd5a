package models

// FoodEstimate is a best-effort name/calorie pair from the food lookup.
// Both the local table and the external estimator resolve to this shape.
type FoodEstimate struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}
