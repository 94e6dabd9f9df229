package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is one user-authored evaluation of one game. IDs are opaque
// strings assigned by the store; UserEmail/UserName come from the bound
// identity at creation and never change afterwards.
type Review struct {
	ID             string  `gorm:"primaryKey" json:"id"`
	ImageURL       string  `json:"imageUrl"`
	GameTitle      string  `json:"gameTitle"`
	Description    string  `json:"description"`
	Rating         float64 `json:"rating"`
	PublishingYear int     `json:"publishingYear"`
	Genre          string  `json:"genre"`
	UserEmail      string  `gorm:"index" json:"userEmail"`
	UserName       string  `json:"userName"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ReviewInput - editable review fields accepted on create and update.
// Authorship fields are stamped server-side from the bound identity,
// never taken from the body.
type ReviewInput struct {
	ImageURL       string  `json:"imageUrl" validate:"required,url"`
	GameTitle      string  `json:"gameTitle" validate:"required"`
	Description    string  `json:"description" validate:"required"`
	Rating         float64 `json:"rating" validate:"required,gte=1,lte=10"`
	PublishingYear int     `json:"publishingYear" validate:"required,publishingyear"`
	Genre          string  `json:"genre" validate:"required,oneof=Action Adventure Sports Strategy RPG"`
}
