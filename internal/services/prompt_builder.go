package services

import (
	"fmt"
	"strconv"
	"strings"

	"mealplanner/internal/models/request_models"
)

const SystemPrompt = "You are a nutrition and meal planning expert."

// RenderPrompt builds the user message sent to the completion model.
func RenderPrompt(in request_models.MealPlanInput, ranked []RankedHall, split CalorieSplit, items MealItems) string {
	halls := make([]string, 0, len(ranked))
	for _, h := range ranked {
		halls = append(halls, fmt.Sprintf("%s (%.2f mi)", h.Name, h.DistanceMiles))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nI have the following meal items from the top %d closest dining halls to the user.\n", len(ranked))
	fmt.Fprintf(&b, "The halls are: %s.\n\n", strings.Join(halls, ", "))

	b.WriteString("Meal breakdown:\n----------------\n")
	b.WriteString("User Details:\n")
	fmt.Fprintf(&b, "- Weight: %s lbs\n", formatNumber(in.WeightLbs))
	fmt.Fprintf(&b, "- Height: %s inches\n", formatNumber(in.HeightInches))
	fmt.Fprintf(&b, "- Goal: %s\n", in.Goal)
	fmt.Fprintf(&b, "- Daily Calorie Goal: %.0f calories\n", split.Daily)
	if in.PreferredFood != "" {
		fmt.Fprintf(&b, "- Preferred Food: %s\n", in.PreferredFood)
	}

	b.WriteString("\nCalorie Allocation:\n")
	fmt.Fprintf(&b, "- Breakfast: %.0f calories\n", split.Breakfast)
	fmt.Fprintf(&b, "- Lunch: %.0f calories\n", split.Lunch)
	fmt.Fprintf(&b, "- Dinner: %.0f calories\n", split.Dinner)

	fmt.Fprintf(&b, "\nUser Preferences/Restrictions: %s\n", strings.Join(in.Preferences, ", "))

	fmt.Fprintf(&b, "\nBreakfast Items:\n%s\n", FormatItems(items.Breakfast))
	fmt.Fprintf(&b, "\nLunch Items:\n%s\n", FormatItems(items.Lunch))
	fmt.Fprintf(&b, "\nDinner Items:\n%s\n", FormatItems(items.Dinner))

	fmt.Fprintf(&b, `
Please generate a coherent meal plan recommendation for today that:
1. Uses only the items listed above from the top %d closest dining halls.
2. Includes breakfast, lunch, and dinner.
3. Meets the calorie targets for each meal.
4. Honors the user's preferences.
5. Provides reasoning for your choices.
`, len(ranked))
	return b.String()
}

// FormatItems renders one bullet per item. Missing fields print as
// "Unknown" for the name and "?" for numbers.
func FormatItems(items []MenuItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		name := item.FoodName
		if name == "" {
			name = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("- %s (%s cal, %sg protein)", name, formatOptional(item.Calorie), formatOptional(item.Protein)))
	}
	return strings.Join(lines, "\n")
}

func formatOptional(v *float64) string {
	if v == nil {
		return "?"
	}
	return formatNumber(*v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
