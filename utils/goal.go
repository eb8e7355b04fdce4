package utils

import (
	"math"

	"github.com/DerekRojGar/awa-AquaReminder/config"
	"github.com/DerekRojGar/awa-AquaReminder/models"
)

// activityAdjustmentML maps activity level to the extra volume added on top of
// the weight-based baseline. Heuristic constants, not a medical formula.
var activityAdjustmentML = map[string]float64{
	models.ActivityLow:      0,
	models.ActivityModerate: 250,
	models.ActivityHigh:     500,
}

// SuggestedGoalML computes the recommended daily intake from weight and
// activity level: max(1500, weight*35 + adjustment). A missing or unknown
// activity contributes no adjustment; a weight the formula cannot work with
// yields the app default instead of an error, so a half-filled form still gets
// a sane goal.
func SuggestedGoalML(weightKg float64, activity string) int {
	if weightKg <= 0 {
		return config.DefaultDailyGoalML
	}
	suggested := weightKg*35 + activityAdjustmentML[activity]
	return int(math.Max(1500, math.Round(suggested)))
}
