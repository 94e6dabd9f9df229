package handlers

import (
	"net/http"
	"sync"
	"time"

	"chillgamer/db"
	"chillgamer/models"
	"chillgamer/monitoring"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats aggregates catalog totals. Each query is independent,
// so they run concurrently and the handler waits for all of them.
func GetDashboardStats(c *gin.Context) {
	start := time.Now()

	var (
		totalReviews   int64
		totalUsers     int64
		totalWatchlist int64
		avgRating      float64
		topGenre       string
	)

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		db.DB.Model(&models.Review{}).Count(&totalReviews)
	}()

	go func() {
		defer wg.Done()
		db.DB.Model(&models.User{}).Count(&totalUsers)
	}()

	go func() {
		defer wg.Done()
		db.DB.Model(&models.WatchlistEntry{}).Count(&totalWatchlist)
	}()

	go func() {
		defer wg.Done()
		var avg struct{ Avg float64 }
		db.DB.Model(&models.Review{}).Select("AVG(rating) as avg").Scan(&avg)
		avgRating = avg.Avg
	}()

	go func() {
		defer wg.Done()
		var top struct {
			Genre string
			Count int64
		}
		db.DB.Model(&models.Review{}).
			Select("genre, COUNT(*) as count").
			Group("genre").
			Order("count DESC").
			Limit(1).
			Scan(&top)
		topGenre = top.Genre
	}()

	wg.Wait()

	monitoring.TotalReviews.Set(float64(totalReviews))
	monitoring.TotalUsers.Set(float64(totalUsers))
	monitoring.TotalWatchlistEntries.Set(float64(totalWatchlist))

	if topGenre == "" {
		topGenre = "N/A"
	}

	c.JSON(http.StatusOK, gin.H{
		"statistics": gin.H{
			"total_reviews":           totalReviews,
			"total_users":             totalUsers,
			"total_watchlist_entries": totalWatchlist,
			"average_rating":          avgRating,
			"top_genre":               topGenre,
		},
		"calculation_time": time.Since(start).String(),
	})
}

// HealthCheck for deploy probes
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
