package models

// Gender selects the Mifflin-St Jeor offset constant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel scales BMR into total daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "lightly_active"
	ActivityModerate   ActivityLevel = "moderately_active"
	ActivityVeryActive ActivityLevel = "very_active"
	ActivityExtra      ActivityLevel = "extra_active"
)

// ActivityLevels lists every valid level, in increasing intensity.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityVeryActive,
	ActivityExtra,
}

// Goal shifts the daily target up or down from TDEE.
type Goal string

const (
	GoalLoseWeight Goal = "lose_weight"
	GoalMaintain   Goal = "maintain"
	GoalGainWeight Goal = "gain_weight"
)

// UserProfile is the single tracked user's biometrics. It is created once at
// setup and replaced wholesale on every save; there are no partial updates.
type UserProfile struct {
	Name          string        `json:"name" validate:"required"`
	Age           int           `json:"age" validate:"required"`
	Gender        Gender        `json:"gender" validate:"required,oneof=male female"`
	Height        float64       `json:"height" validate:"required"` // cm
	Weight        float64       `json:"weight" validate:"required"` // kg
	ActivityLevel ActivityLevel `json:"activityLevel" validate:"required,oneof=sedentary lightly_active moderately_active very_active extra_active"`
	Goal          Goal          `json:"goal" validate:"required,oneof=lose_weight maintain gain_weight"`
}
