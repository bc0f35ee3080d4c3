package services

const (
	caloriesPerPound = 15

	breakfastShare = 0.50
	lunchShare     = 0.36
	dinnerShare    = 0.14

	goalAdjustment = 500
)

type CalorieSplit struct {
	Daily     float64
	Breakfast float64
	Lunch     float64
	Dinner    float64
}

// DailyCalories is the maintenance target. Height is deliberately not a factor.
func DailyCalories(weightLbs float64) float64 {
	return weightLbs * caloriesPerPound
}

// AdjustForGoal shifts the daily target for weight gain or loss. Unknown
// goals, including "maintain", leave it unchanged.
func AdjustForGoal(daily float64, goal string) float64 {
	switch goal {
	case "gain":
		return daily + goalAdjustment
	case "lose":
		return daily - goalAdjustment
	default:
		return daily
	}
}

// MealSplit applies each share independently; nothing is normalized.
func MealSplit(daily float64) CalorieSplit {
	return CalorieSplit{
		Daily:     daily,
		Breakfast: daily * breakfastShare,
		Lunch:     daily * lunchShare,
		Dinner:    daily * dinnerShare,
	}
}
