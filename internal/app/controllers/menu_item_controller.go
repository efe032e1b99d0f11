package controllers

import (
	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/app/models/dto"
	"github.com/yigit/ucsbapi/internal/app/services"
)

// MenuItemController serves /api/UCSBDiningCommonsMenuItem
type MenuItemController = ResourceController[models.MenuItem, int64]

// NewMenuItemController creates a new MenuItemController. Menu items are list, get and create only.
func NewMenuItemController(service *services.MenuItemService) *MenuItemController {
	return &MenuItemController{
		service:    service,
		basePath:   "/UCSBDiningCommonsMenuItem",
		keyParam:   "id",
		parseKey:   parseInt64Key,
		bindCreate: bindForm[models.MenuItem, dto.CreateMenuItemRequest],
		operations: OpReadCreate,
	}
}
