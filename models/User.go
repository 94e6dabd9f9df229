package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account record kept alongside the identity provider's own
// account. Timestamps arrive as strings from the provider and are stored
// verbatim. Email is the lookup key for sign-in patches and is unique.
type User struct {
	ID             string `gorm:"primaryKey" json:"id"`
	Name           string `json:"name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt      string `json:"createdAt"`
	LastSignInTime string `json:"lastSignInTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// SignUpInput - used at signup to mirror the identity-provider account
type SignUpInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	CreatedAt string `json:"createdAt"`
}

// SignInInput - used on every sign-in to refresh lastSignInTime
type SignInInput struct {
	Email          string `json:"email" validate:"required,email"`
	LastSignInTime string `json:"lastSignInTime" validate:"required"`
}
