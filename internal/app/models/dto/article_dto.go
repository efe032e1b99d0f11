package dto

import (
	"time"

	"github.com/yigit/ucsbapi/internal/app/models"
)

// LocalDateTimeLayout is the ISO local date-time accepted for dateAdded
const LocalDateTimeLayout = models.LocalDateTimeLayout

// CreateArticleRequest carries the query parameters of POST /api/ucsbarticles/post
type CreateArticleRequest struct {
	Title       string    `form:"title" binding:"required"`
	URL         string    `form:"url" binding:"required"`
	Explanation string    `form:"explanation" binding:"required"`
	Email       string    `form:"email" binding:"required"`
	DateAdded   time.Time `form:"dateAdded" binding:"required" time_format:"2006-01-02T15:04:05" time_utc:"1"`
}

// ToModel builds an unsaved article
func (r CreateArticleRequest) ToModel() *models.Article {
	return &models.Article{
		Title:       r.Title,
		URL:         r.URL,
		Explanation: r.Explanation,
		Email:       r.Email,
		DateAdded:   models.NewLocalDateTime(r.DateAdded),
	}
}
