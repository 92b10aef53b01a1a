package repositories

import (
	"strings"

	"gorm.io/gorm"

	"github.com/josbet/floreria/app/models"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return user, err
}

// FindByUsername looks up a user by exact username.
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return user, err
}

// FindByIdentifier resolves a login identifier that may be either a
// username or an email address. Email comparison is case-insensitive
// because emails are stored lower-cased.
func (r *UserRepository) FindByIdentifier(identifier string) (models.User, error) {
	var user models.User
	err := r.db.
		Where("username = ? OR email = ?", identifier, strings.ToLower(identifier)).
		First(&user).Error
	return user, err
}

// Exists reports whether a user with the given username or email is
// already registered.
func (r *UserRepository) Exists(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// All returns every user.
func (r *UserRepository) All() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}
