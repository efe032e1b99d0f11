package services

import (
	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/app/repositories"
)

type (
	MenuItemService     = ResourceService[models.MenuItem, int64]
	OrganizationService = ResourceService[models.Organization, string]
	ArticleService      = ResourceService[models.Article, int64]
)

// Services holds all the service instances
type Services struct {
	MenuItems     *MenuItemService
	Organizations *OrganizationService
	Articles      *ArticleService
}

// NewServices wires a service for every store in repos
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		MenuItems:     NewResourceService(MenuItemResource, repos.MenuItems),
		Organizations: NewResourceService(OrganizationResource, repos.Organizations),
		Articles:      NewResourceService(ArticleResource, repos.Articles),
	}
}
