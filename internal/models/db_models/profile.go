package db_models

import "github.com/lib/pq"

type Profile struct {
	BaseModel
	UserID         string `gorm:"uniqueIndex;not null"`
	StartingWeight float64
	HeightInches   float64
	Goal           string
	Restrictions   pq.StringArray `gorm:"type:text[]"`
	UserLat        float64
	UserLon        float64
	PreferredFood  string
}
