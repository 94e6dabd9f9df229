package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"chillgamer/db"
	"chillgamer/models"
	"chillgamer/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubIdentityProvider binds a fixed identity (or none) to every request
type stubIdentityProvider struct {
	identity *Identity
}

func (s stubIdentityProvider) Identify(*http.Request) (*Identity, error) {
	return s.identity, nil
}

var testDBCount int

// setupRouter points the global DB handle at a fresh in-memory database
// and mounts the full route table with the given identity bound.
func setupRouter(t *testing.T, identity *Identity) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	testDBCount++
	dsn := fmt.Sprintf("file:handlers%d?mode=memory&cache=shared", testDBCount)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Review{}, &models.User{}, &models.WatchlistEntry{}))
	db.DB = gdb

	return mountRoutes(identity)
}

// mountRoutes builds a router over the current db.DB; used by tests that
// exercise two callers against the same database
func mountRoutes(identity *Identity) *gin.Engine {
	r := gin.New()
	r.Use(IdentityBinding(stubIdentityProvider{identity}))

	r.GET("/review", GetReviews)
	r.GET("/review/top", GetTopReviews)
	r.GET("/review/:id", GetReviewByID)
	r.GET("/myreviews", GetMyReviews)
	r.GET("/users", GetUsers)
	r.POST("/users", CreateUser)
	r.PATCH("/users", TouchLastSignIn)
	r.DELETE("/users/:id", DeleteUser)
	r.GET("/watchlist", GetWatchlist)
	r.GET("/stats", GetDashboardStats)

	protected := r.Group("/").Use(RequireIdentity())
	{
		protected.POST("/review", CreateReview)
		protected.PUT("/review/:id", UpdateReview)
		protected.DELETE("/review/:id", DeleteReview)
		protected.POST("/watchlist", AddToWatchlist)
		protected.DELETE("/watchlist/:id", RemoveFromWatchlist)
	}

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func validReviewInput() map[string]interface{} {
	return map[string]interface{}{
		"imageUrl":       "https://example.com/doom.jpg",
		"gameTitle":      "Doom Eternal",
		"description":    "Rip and tear until it is done.",
		"rating":         9,
		"publishingYear": 2020,
		"genre":          "Action",
	}
}
