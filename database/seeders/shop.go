package seeders

import (
	"errors"

	"gorm.io/gorm"

	"github.com/josbet/floreria/app/models"
	"github.com/josbet/floreria/config"
)

func init() {
	Register("admin_user", SeedAdminUser)
	Register("catalog", SeedCatalog)
}

// SeedAdminUser ensures the admin account exists. The password comes
// from ADMIN_PASSWORD and is only applied on first creation; an existing
// admin row is left untouched.
func SeedAdminUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.User{
		Username: "admin",
		Email:    "admin@example.com",
		IsAdmin:  true,
	}
	if err := admin.SetPassword(config.AdminPassword()); err != nil {
		return err
	}
	return db.Create(&admin).Error
}

// SeedCatalog inserts the three starter arrangements, but only into an
// empty catalog so manual edits survive re-runs.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	zero := 0.0
	products := []models.Product{
		{Name: "Rosas Eternas", Category: "ramo", Price: &zero, Description: "Ramo de rosas preservadas."},
		{Name: "Girasoles", Category: "ramo", Price: &zero, Description: "Ramo de girasoles frescos."},
		{Name: "Tulipanes", Category: "ramo", Price: &zero, Description: "Ramo de tulipanes de temporada."},
	}
	return db.Create(&products).Error
}
