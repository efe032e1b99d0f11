package models

// MenuItem represents a dish served at one station of a dining commons
type MenuItem struct {
	ID                int64  `json:"id" db:"id"`
	DiningCommonsCode string `json:"diningCommonsCode" db:"dining_commons_code"`
	Name              string `json:"name" db:"name"`
	Station           string `json:"station" db:"station"`
}
