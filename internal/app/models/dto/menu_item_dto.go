package dto

import "github.com/yigit/ucsbapi/internal/app/models"

// CreateMenuItemRequest carries the query parameters of POST /api/UCSBDiningCommonsMenuItem/post
type CreateMenuItemRequest struct {
	DiningCommonsCode string `form:"diningCommonsCode" binding:"required"`
	Name              string `form:"name" binding:"required"`
	Station           string `form:"station" binding:"required"`
}

// ToModel builds an unsaved menu item
func (r CreateMenuItemRequest) ToModel() *models.MenuItem {
	return &models.MenuItem{
		DiningCommonsCode: r.DiningCommonsCode,
		Name:              r.Name,
		Station:           r.Station,
	}
}
