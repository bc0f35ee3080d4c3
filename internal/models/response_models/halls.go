package response_models

type RankedHall struct {
	Name          string  `json:"name"`
	DistanceMiles float64 `json:"distance_miles"`
}

type HallsResponse struct {
	Halls []RankedHall `json:"halls"`
}

type MenuItem struct {
	FoodName   string   `json:"food_name"`
	Calorie    *float64 `json:"calorie"`
	Protein    *float64 `json:"protein"`
	MealType   string   `json:"meal_type"`
	DiningHall string   `json:"dining_hall"`
	Allergens  []string `json:"allergens,omitempty"`
}

type HallMenuResponse struct {
	Hall      string     `json:"hall"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Items     []MenuItem `json:"items"`
}
