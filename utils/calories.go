package utils

import (
	"math"

	"github.com/NagamManaswini/CALORIE-COUNTER/models"
)

// DefaultDailyTarget is shown before a profile has been set up.
const DefaultDailyTarget = 2000

// CalculateBMR implements the Mifflin-St Jeor equation. Weight is in
// kilograms, height in centimeters, age in years. Inputs are trusted:
// implausible values propagate into an implausible (but finite) result
// rather than an error.
func CalculateBMR(p models.UserProfile) float64 {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == models.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityMultiplier maps an activity level to its TDEE factor. The switch
// is exhaustive over the declared levels; anything else scales as sedentary.
func ActivityMultiplier(level models.ActivityLevel) float64 {
	switch level {
	case models.ActivitySedentary:
		return 1.2
	case models.ActivityLight:
		return 1.375
	case models.ActivityModerate:
		return 1.55
	case models.ActivityVeryActive:
		return 1.725
	case models.ActivityExtra:
		return 1.9
	}
	return 1.2
}

// GoalAdjustment is the fixed calorie offset applied on top of TDEE.
func GoalAdjustment(goal models.Goal) float64 {
	switch goal {
	case models.GoalLoseWeight:
		return -500
	case models.GoalMaintain:
		return 0
	case models.GoalGainWeight:
		return 500
	}
	return 0
}

// CalculateDailyTarget derives the daily calorie target:
// BMR scaled by the activity multiplier, shifted by the goal adjustment,
// rounded half-up to the nearest integer.
func CalculateDailyTarget(p models.UserProfile) int {
	bmr := CalculateBMR(p)
	tdee := bmr * ActivityMultiplier(p.ActivityLevel)
	return int(math.Floor(tdee + GoalAdjustment(p.Goal) + 0.5))
}
