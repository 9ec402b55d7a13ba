package adminController

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

func TestVisibleAdminsDeveloperSeesAll(t *testing.T) {
	admins := []models.AdminUser{
		{ID: 1, RoleID: models.RoleDeveloper},
		{ID: 2, RoleID: models.RoleAdmin},
		{ID: 3, RoleID: models.RoleManager},
	}

	got := VisibleAdmins(admins, models.RoleDeveloper)
	assert.Len(t, got, 3)
}

func TestVisibleAdminsAdminCannotSeeDevelopers(t *testing.T) {
	admins := []models.AdminUser{
		{ID: 1, RoleID: models.RoleDeveloper},
		{ID: 2, RoleID: models.RoleAdmin},
		{ID: 3, RoleID: models.RoleManager},
		{ID: 4, RoleID: models.RoleDeveloper},
	}

	got := VisibleAdmins(admins, models.RoleAdmin)
	assert.Len(t, got, 2)
	for _, a := range got {
		assert.NotEqual(t, models.RoleDeveloper, a.RoleID)
	}
}

func TestVisibleAdminsEmpty(t *testing.T) {
	assert.Empty(t, VisibleAdmins(nil, models.RoleAdmin))
	assert.Empty(t, VisibleAdmins([]models.AdminUser{}, models.RoleDeveloper))
}
