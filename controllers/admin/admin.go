package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pandiyanpvt/jsmart-admin-api/auth"
	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

type AdminInput struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password"`
	RoleID   uint   `json:"role_id"`
}

// VisibleAdmins filters the admin list by the viewer's role: a DEVELOPER
// viewer sees everyone, any other viewer never sees DEVELOPER accounts.
func VisibleAdmins(admins []models.AdminUser, viewerRole uint) []models.AdminUser {
	if viewerRole == models.RoleDeveloper {
		return admins
	}
	visible := make([]models.AdminUser, 0, len(admins))
	for _, a := range admins {
		if a.RoleID == models.RoleDeveloper {
			continue
		}
		visible = append(visible, a)
	}
	return visible
}

func viewerRole(c *gin.Context) uint {
	if role, ok := c.Get("role_id"); ok {
		if r, ok := role.(uint); ok {
			return r
		}
	}
	return models.RoleManager
}

// GetAllAdmins lists admin accounts the caller is allowed to see.
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.AdminUser
		if err := db.Order("created_at desc").Find(&admins).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}
		c.JSON(http.StatusOK, VisibleAdmins(admins, viewerRole(c)))
	}
}

func CreateAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AdminInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		roleID := input.RoleID
		if roleID == 0 {
			roleID = models.RoleManager
		}
		// Only a developer can create developer accounts.
		if roleID == models.RoleDeveloper && viewerRole(c) != models.RoleDeveloper {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to create developer accounts"})
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		admin := models.AdminUser{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: hash,
			RoleID:       roleID,
			Active:       true,
		}
		if err := db.Create(&admin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
			return
		}
		c.JSON(http.StatusCreated, admin)
	}
}

func UpdateAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var admin models.AdminUser
		if err := db.First(&admin, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		if admin.RoleID == models.RoleDeveloper && viewerRole(c) != models.RoleDeveloper {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to modify developer accounts"})
			return
		}

		var input AdminInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		admin.Email = input.Email
		if input.Name != "" {
			admin.Name = input.Name
		}
		if input.RoleID != 0 {
			if input.RoleID == models.RoleDeveloper && viewerRole(c) != models.RoleDeveloper {
				c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to assign the developer role"})
				return
			}
			admin.RoleID = input.RoleID
		}
		if input.Password != "" {
			hash, err := auth.HashPassword(input.Password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
				return
			}
			admin.PasswordHash = hash
		}

		if err := db.Save(&admin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin"})
			return
		}
		c.JSON(http.StatusOK, admin)
	}
}

func DeleteAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var admin models.AdminUser
		if err := db.First(&admin, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		if admin.RoleID == models.RoleDeveloper && viewerRole(c) != models.RoleDeveloper {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to delete developer accounts"})
			return
		}

		if err := db.Delete(&admin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete admin"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
	}
}

// GetRoles lists the role id to display name mapping.
func GetRoles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var roles []models.UserRole
		if err := db.Order("id").Find(&roles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch roles"})
			return
		}
		c.JSON(http.StatusOK, roles)
	}
}
