package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"chillgamer/cache"
	"chillgamer/catalog"
	"chillgamer/db"
	"chillgamer/models"
	"chillgamer/utils"

	"github.com/gin-gonic/gin"
)

// GetReviews returns the review catalog. Optional sort/genre query
// parameters apply the same ordered, filtered view the browser client
// computes; without them the store's natural order comes back untouched.
func GetReviews(c *gin.Context) {
	sortKey, err := catalog.ParseSortKey(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	genre := c.DefaultQuery("genre", catalog.GenreAll)

	reviews, err := fetchAllReviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, catalog.ComputeView(reviews, sortKey, genre))
}

// GetTopReviews serves the landing view's highest-rated projection
func GetTopReviews(c *gin.Context) {
	limit := 6
	if l, ok := c.GetQuery("limit"); ok {
		parsed, err := parsePositiveInt(l)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	reviews, err := fetchAllReviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, catalog.TopRated(reviews, limit))
}

// GetReviewByID with Redis caching
func GetReviewByID(c *gin.Context) {
	id := c.Param("id")

	if cache.IsRedisAvailable() {
		if cached, err := cache.GetReview(id); err == nil {
			utils.Log.Debug("Cache HIT: review " + id)
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	var review models.Review
	if err := db.DB.First(&review, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetReview(review)
	}

	c.JSON(http.StatusOK, review)
}

// CreateReview stamps authorship from the bound identity and returns the
// generated id so the client can confirm the insert.
func CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	identity := CurrentIdentity(c)
	userName := identity.DisplayName
	if userName == "" {
		userName = "Anonymous"
	}

	review := models.Review{
		ImageURL:       input.ImageURL,
		GameTitle:      input.GameTitle,
		Description:    input.Description,
		Rating:         input.Rating,
		PublishingYear: input.PublishingYear,
		Genre:          input.Genre,
		UserEmail:      identity.Email,
		UserName:       userName,
	}

	if err := db.DB.Create(&review).Error; err != nil {
		utils.LogError("Failed to create review", map[string]interface{}{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	invalidateReviewCaches(review.ID)

	c.JSON(http.StatusCreated, gin.H{"insertedId": review.ID})
}

// UpdateReview replaces the editable fields. An update to an unknown id is
// rejected with 404 rather than upserting a new document, and only the
// author may update a review.
func UpdateReview(c *gin.Context) {
	id := c.Param("id")

	var review models.Review
	if err := db.DB.First(&review, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	identity := CurrentIdentity(c)
	if identity.Email != review.UserEmail {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the review author can update"})
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	// id and authorship fields stay as created
	review.ImageURL = input.ImageURL
	review.GameTitle = input.GameTitle
	review.Description = input.Description
	review.Rating = input.Rating
	review.PublishingYear = input.PublishingYear
	review.Genre = input.Genre

	if err := db.DB.Save(&review).Error; err != nil {
		utils.LogError("Failed to update review", map[string]interface{}{"id": id, "error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	invalidateReviewCaches(review.ID)

	c.JSON(http.StatusOK, review)
}

// DeleteReview removes a review by id; only the author may delete it
func DeleteReview(c *gin.Context) {
	id := c.Param("id")

	var review models.Review
	if err := db.DB.First(&review, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	identity := CurrentIdentity(c)
	if identity.Email != review.UserEmail {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the review author can delete"})
		return
	}

	if err := db.DB.Delete(&review).Error; err != nil {
		utils.LogError("Failed to delete review", map[string]interface{}{"id": id, "error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	invalidateReviewCaches(review.ID)

	c.Status(http.StatusNoContent)
}

// GetMyReviews returns the reviews authored under one email
func GetMyReviews(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	var reviews []models.Review
	if err := db.DB.Where("user_email = ?", email).Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// fetchAllReviews reads the full review list through the cache
func fetchAllReviews() ([]models.Review, error) {
	if cache.IsRedisAvailable() {
		if cached, err := cache.GetReviewList(); err == nil {
			utils.Log.Debug("Cache HIT: review list")
			return cached, nil
		}
		utils.Log.Debug("Cache MISS: review list")
	}

	var reviews []models.Review
	if err := db.DB.Find(&reviews).Error; err != nil {
		return nil, err
	}

	if cache.IsRedisAvailable() {
		cache.SetReviewList(reviews)
	}

	return reviews, nil
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}

func invalidateReviewCaches(id string) {
	if cache.IsRedisAvailable() {
		cache.InvalidateReview(id)
		utils.Log.Debug("Review cache invalidated: " + id)
	}
}
