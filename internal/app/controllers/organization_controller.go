package controllers

import (
	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/app/models/dto"
	"github.com/yigit/ucsbapi/internal/app/services"
)

// OrganizationController serves /api/ucsborganizations
type OrganizationController = ResourceController[models.Organization, string]

// NewOrganizationController creates a new OrganizationController
func NewOrganizationController(service *services.OrganizationService) *OrganizationController {
	return &OrganizationController{
		service:    service,
		basePath:   "/ucsborganizations",
		keyParam:   "orgCode",
		parseKey:   parseStringKey,
		bindCreate: bindForm[models.Organization, dto.CreateOrganizationRequest],
		operations: OpAll,
	}
}
