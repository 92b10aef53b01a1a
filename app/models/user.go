package models

import (
	"gorm.io/gorm"

	"github.com/josbet/floreria/pkg/auth"
)

// User is a registered shop visitor. Username and email are globally
// unique; the password is stored only as a bcrypt hash.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;size:200;not null" json:"email"` // stored lower-cased
	PasswordHash string `gorm:"size:200;not null" json:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
}

// SetPassword hashes raw and stores the result. The raw password is never
// persisted.
func (u *User) SetPassword(raw string) error {
	hash, err := auth.HashPassword(raw)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword reports whether raw matches the stored hash.
func (u *User) CheckPassword(raw string) bool {
	return auth.CheckPassword(u.PasswordHash, raw)
}
