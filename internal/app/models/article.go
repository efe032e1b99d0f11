package models

// Article is a link recommended by a member of the campus community
type Article struct {
	ID          int64         `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	URL         string        `json:"url" db:"url"`
	Explanation string        `json:"explanation" db:"explanation"`
	Email       string        `json:"email" db:"email"`
	DateAdded   LocalDateTime `json:"dateAdded" db:"date_added"`
}
