package seeders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/josbet/floreria/app/models"
	"github.com/josbet/floreria/config"
	"github.com/josbet/floreria/database/seeders"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}))
	return db
}

func TestSeedingIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, seeders.RunAll(db))
	require.NoError(t, seeders.RunAll(db))

	var admins []models.User
	require.NoError(t, db.Where("is_admin = ?", true).Find(&admins).Error)
	require.Len(t, admins, 1, "re-running the seeders must not duplicate the admin")
	assert.Equal(t, "admin", admins[0].Username)
	assert.Equal(t, "admin@example.com", admins[0].Email)
	assert.True(t, admins[0].CheckPassword(config.AdminPassword()))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 3, count, "re-running the seeders must not duplicate the catalog")
}

func TestStarterCatalog(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, seeders.RunAll(db))

	var products []models.Product
	require.NoError(t, db.Order("name").Find(&products).Error)
	require.Len(t, products, 3)

	names := []string{products[0].Name, products[1].Name, products[2].Name}
	assert.Equal(t, []string{"Girasoles", "Rosas Eternas", "Tulipanes"}, names)

	for _, p := range products {
		assert.Equal(t, "ramo", p.Category)
		require.NotNil(t, p.Price, p.Name)
		assert.Zero(t, *p.Price, p.Name)
	}
}

func TestCatalogSeederSkipsNonEmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Product{Name: "Existente"}).Error)

	require.NoError(t, seeders.SeedCatalog(db))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "a curated catalog must not be reseeded")
}

func TestAdminSeederKeepsExistingAccount(t *testing.T) {
	db := newTestDB(t)

	admin := models.User{Username: "admin", Email: "admin@example.com", IsAdmin: true}
	require.NoError(t, admin.SetPassword("rotated-password"))
	require.NoError(t, db.Create(&admin).Error)

	require.NoError(t, seeders.SeedAdminUser(db))

	var stored models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&stored).Error)
	assert.True(t, stored.CheckPassword("rotated-password"), "an existing admin password must survive seeding")
}
