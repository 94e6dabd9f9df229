package handlers

import (
	"net/http"

	"chillgamer/cache"
	"chillgamer/db"
	"chillgamer/models"
	"chillgamer/utils"

	"github.com/gin-gonic/gin"
)

// AddToWatchlist inserts a snapshot of a game under the bound identity.
// Entries are deliberately not deduplicated and carry no reference back to
// the source review.
func AddToWatchlist(c *gin.Context) {
	var input models.WatchlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	identity := CurrentIdentity(c)

	entry := models.WatchlistEntry{
		ImageURL:       input.ImageURL,
		GameTitle:      input.GameTitle,
		Description:    input.Description,
		Rating:         input.Rating,
		PublishingYear: input.PublishingYear,
		Genre:          input.Genre,
		UserEmail:      identity.Email,
	}

	if err := db.DB.Create(&entry).Error; err != nil {
		utils.LogError("Failed to add watchlist entry", map[string]interface{}{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to watchlist"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.InvalidateWatchlist(entry.UserEmail)
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": entry.ID})
}

// GetWatchlist returns all entries owned by the given email, with Redis
// caching per owner
func GetWatchlist(c *gin.Context) {
	email := c.Query("email")

	if cache.IsRedisAvailable() {
		if cached, err := cache.GetWatchlist(email); err == nil {
			utils.Log.Debug("Cache HIT: watchlist for " + email)
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	var entries []models.WatchlistEntry
	if err := db.DB.Where("user_email = ?", email).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watchlist"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetWatchlist(email, entries)
	}

	c.JSON(http.StatusOK, entries)
}

// RemoveFromWatchlist deletes an entry by id; only its owner may remove it.
// Removing an already-removed id reports 404, not success.
func RemoveFromWatchlist(c *gin.Context) {
	id := c.Param("id")

	var entry models.WatchlistEntry
	if err := db.DB.First(&entry, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watchlist entry not found"})
		return
	}

	identity := CurrentIdentity(c)
	if identity.Email != entry.UserEmail {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can remove a watchlist entry"})
		return
	}

	if err := db.DB.Delete(&entry).Error; err != nil {
		utils.LogError("Failed to remove watchlist entry", map[string]interface{}{"id": id, "error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from watchlist"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.InvalidateWatchlist(entry.UserEmail)
	}

	c.Status(http.StatusNoContent)
}
