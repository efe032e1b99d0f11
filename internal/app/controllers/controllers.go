package controllers

import "github.com/yigit/ucsbapi/internal/app/services"

// Controllers holds all the controller instances
type Controllers struct {
	MenuItems     *MenuItemController
	Organizations *OrganizationController
	Articles      *ArticleController
}

// NewControllers creates a controller for every service
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		MenuItems:     NewMenuItemController(svcs.MenuItems),
		Organizations: NewOrganizationController(svcs.Organizations),
		Articles:      NewArticleController(svcs.Articles),
	}
}

// Resources lists the controllers in mount order
func (c *Controllers) Resources() []Resource {
	return []Resource{c.MenuItems, c.Organizations, c.Articles}
}
