package auth

import (
	"fmt"

	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/pkg/apperrors"
)

// Capability is the authorization level an operation requires
type Capability string

const (
	// CapabilityUser covers read access and is held by every authenticated role
	CapabilityUser Capability = "user"
	// CapabilityAdmin covers create, update and delete
	CapabilityAdmin Capability = "admin"
)

// capabilityRoles lists the roles granting each capability. ADMIN implies USER.
var capabilityRoles = map[Capability][]models.RoleType{
	CapabilityUser:  {models.RoleUser, models.RoleAdmin},
	CapabilityAdmin: {models.RoleAdmin},
}

// Grants reports whether any of roles grants capability
func Grants(roles models.Roles, capability Capability) bool {
	for _, granting := range capabilityRoles[capability] {
		if roles.HasRole(granting) {
			return true
		}
	}
	return false
}

// Authorize returns ErrPermissionDenied unless roles grant capability
func Authorize(roles models.Roles, capability Capability) error {
	if !Grants(roles, capability) {
		return apperrors.NewForbiddenError(fmt.Sprintf("%s capability required", capability))
	}
	return nil
}
