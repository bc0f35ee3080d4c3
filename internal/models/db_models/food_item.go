package db_models

// FoodItem is one row of the menu table. The table is populated by a
// separate scraper; this service only reads it.
type FoodItem struct {
	ID         int64    `gorm:"primaryKey"`
	FoodName   string   `gorm:"column:food_name"`
	Calorie    *float64 `gorm:"column:calorie"`
	Protein    *float64 `gorm:"column:protein"`
	MealType   string   `gorm:"column:meal_type;index"`
	DiningHall string   `gorm:"column:dining_hall;index"`
	// Allergens is a comma separated tag list, e.g. "Milk, Vegetarian".
	Allergens *string `gorm:"column:allergens"`
}

func (FoodItem) TableName() string {
	return "food_data"
}
