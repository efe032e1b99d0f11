package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/app/repositories"
)

var defaultOrganizations = []models.Organization{
	{OrgCode: "ZPR", OrgTranslation: "ZETA PHI RHO", OrgTranslationShort: "ZETA PHI RHO", Inactive: false},
	{OrgCode: "SKY", OrgTranslation: "SKYDIVING CLUB", OrgTranslationShort: "SKYDIVING CLUB", Inactive: false},
	{OrgCode: "OSLI", OrgTranslation: "STUDENT LIFE", OrgTranslationShort: "OFFICE OF STUDENT LIFE", Inactive: false},
}

var defaultMenuItems = []models.MenuItem{
	{DiningCommonsCode: "ortega", Name: "Baked Pesto Pasta with Chicken", Station: "Entree Specials"},
	{DiningCommonsCode: "portola", Name: "Cream of Broccoli Soup (v)", Station: "Greens & Grains"},
	{DiningCommonsCode: "de-la-guerra", Name: "Tofu Banh Mi Sandwich (v)", Station: "Entree Specials"},
}

// CreateDefaultData fills the organization and menu item tables when they are empty.
// Failures are collected so one bad record does not stop the rest.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Organizations/Menu items)...")

	var finalErr error

	orgs, err := repos.Organizations.FindAll(ctx)
	switch {
	case err != nil:
		lgr.Error().Err(err).Msg("Error listing organizations")
		finalErr = errors.Join(finalErr, err)
	case len(orgs) == 0:
		for _, org := range defaultOrganizations {
			_, err := repos.Organizations.Insert(ctx, &org)
			if err != nil && !errors.Is(err, repositories.ErrDuplicateKey) {
				lgr.Error().Err(err).Str("orgCode", org.OrgCode).Msg("Error creating default organization")
				finalErr = errors.Join(finalErr, err)
			}
		}
	default:
		lgr.Debug().Int("count", len(orgs)).Msg("Organizations already present, skipping")
	}

	items, err := repos.MenuItems.FindAll(ctx)
	switch {
	case err != nil:
		lgr.Error().Err(err).Msg("Error listing menu items")
		finalErr = errors.Join(finalErr, err)
	case len(items) == 0:
		for _, item := range defaultMenuItems {
			if _, err := repos.MenuItems.Insert(ctx, &item); err != nil {
				lgr.Error().Err(err).Str("name", item.Name).Msg("Error creating default menu item")
				finalErr = errors.Join(finalErr, err)
			}
		}
	default:
		lgr.Debug().Int("count", len(items)).Msg("Menu items already present, skipping")
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data is in place")
	}
	return finalErr
}
