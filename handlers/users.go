package handlers

import (
	"net/http"

	"chillgamer/db"
	"chillgamer/models"
	"chillgamer/utils"

	"github.com/gin-gonic/gin"
)

// CreateUser records a signup, mirroring the identity provider's account.
// Emails are unique here even though the provider is the source of truth;
// a duplicate signup reports conflict instead of inserting a second record.
func CreateUser(c *gin.Context) {
	var input models.SignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var existing models.User
	if err := db.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		return
	}

	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: input.CreatedAt,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user", map[string]interface{}{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": user.ID})
}

// GetUsers lists all user records
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// TouchLastSignIn refreshes lastSignInTime for the user matching the given
// email. A provider account with no user record here reports 404, which
// happens when signup raced the first sign-in.
func TouchLastSignIn(c *gin.Context) {
	var input models.SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	result := db.DB.Model(&models.User{}).
		Where("email = ?", input.Email).
		Update("last_sign_in_time", input.LastSignInTime)

	if result.Error != nil {
		utils.LogError("Failed to update last sign-in", map[string]interface{}{"email": input.Email, "error": result.Error.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update last sign-in"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": result.RowsAffected})
}

// DeleteUser removes a user record by id
func DeleteUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		utils.LogError("Failed to delete user", map[string]interface{}{"id": id, "error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.Status(http.StatusNoContent)
}
