package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WatchlistEntry is a snapshot bookmark of a game, not a reference to a
// review. The copied fields stay as they were at bookmarking time even if
// the source review is later edited or deleted. The same user may bookmark
// the same game more than once.
type WatchlistEntry struct {
	ID             string  `gorm:"primaryKey" json:"id"`
	ImageURL       string  `json:"imageUrl"`
	GameTitle      string  `json:"gameTitle"`
	Description    string  `json:"description"`
	Rating         float64 `json:"rating"`
	PublishingYear int     `json:"publishingYear"`
	Genre          string  `json:"genre"`
	UserEmail      string  `gorm:"index" json:"userEmail"`
}

func (w *WatchlistEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// WatchlistInput - the snapshot fields copied from a review when the user
// bookmarks it. Owner email is stamped from the bound identity.
type WatchlistInput struct {
	ImageURL       string  `json:"imageUrl" validate:"required,url"`
	GameTitle      string  `json:"gameTitle" validate:"required"`
	Description    string  `json:"description"`
	Rating         float64 `json:"rating"`
	PublishingYear int     `json:"publishingYear"`
	Genre          string  `json:"genre"`
}
