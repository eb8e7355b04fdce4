package models

// Sex values accepted in a profile.
const (
	SexMale   = "Male"
	SexFemale = "Female"
	SexOther  = "Other"
)

// Activity levels and the extra millilitres each one adds to the suggested
// daily goal.
const (
	ActivityLow      = "Low"
	ActivityModerate = "Moderate"
	ActivityHigh     = "High"
)

// Profile is the persisted user document (profile.json). Saves are whole-document
// overwrites; there is no partial update. A profile counts as complete once
// weight, height and the daily goal are all set.
type Profile struct {
	Name        string  `json:"name,omitempty"`
	Age         *int    `json:"age,omitempty"`
	WeightKg    float64 `json:"weight_kg"`
	HeightCm    float64 `json:"height_cm"`
	Sex         string  `json:"sex"`
	Activity    string  `json:"activity"`
	DailyGoalML int     `json:"daily_goal_ml"`
	AvatarID    int     `json:"avatar_id"`
	CreatedAt   string  `json:"created_at"`
}

// IsComplete reports whether the three required fields are present. Zero values
// never survive validation on save, so zero means absent here.
func (p *Profile) IsComplete() bool {
	return p != nil && p.WeightKg > 0 && p.HeightCm > 0 && p.DailyGoalML > 0
}

func ValidSex(s string) bool {
	return s == SexMale || s == SexFemale || s == SexOther
}

func ValidActivity(a string) bool {
	return a == ActivityLow || a == ActivityModerate || a == ActivityHigh
}
