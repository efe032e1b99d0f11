package dto

import "github.com/yigit/ucsbapi/internal/app/models"

// CreateOrganizationRequest carries the query parameters of POST /api/ucsborganizations/post
type CreateOrganizationRequest struct {
	OrgCode             string `form:"orgCode" binding:"required"`
	OrgTranslation      string `form:"orgTranslation" binding:"required"`
	OrgTranslationShort string `form:"orgTranslationShort" binding:"required"`
	// pointer so that an explicit false passes "required"
	Inactive *bool `form:"inactive" binding:"required"`
}

// ToModel builds an organization keyed by the caller-supplied code
func (r CreateOrganizationRequest) ToModel() *models.Organization {
	return &models.Organization{
		OrgCode:             r.OrgCode,
		OrgTranslation:      r.OrgTranslation,
		OrgTranslationShort: r.OrgTranslationShort,
		Inactive:            *r.Inactive,
	}
}
