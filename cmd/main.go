package main

import (
	"crypto/tls"
	"log"
	"net/http"
	"os"

	"chillgamer/cache"
	"chillgamer/db"
	"chillgamer/handlers"
	"chillgamer/middleware"
	"chillgamer/monitoring"
	"chillgamer/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	utils.InitLogger()
	monitoring.InitMetrics()
	db.InitDB()

	// The API degrades to database-only reads without Redis
	if err := cache.InitRedis(); err != nil {
		utils.LogWarn("Redis unavailable, caching disabled", map[string]interface{}{"error": err.Error()})
	} else {
		defer cache.CloseRedis()
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RemoveServerHeader())
	r.Use(monitoring.PrometheusMiddleware())

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(handlers.IdentityBinding(handlers.TokenIdentityProvider{}))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	r.GET("/review", handlers.GetReviews)
	r.GET("/review/top", handlers.GetTopReviews)
	r.GET("/review/:id", handlers.GetReviewByID)
	r.GET("/myreviews", handlers.GetMyReviews)
	r.GET("/users", handlers.GetUsers)
	r.POST("/users", handlers.CreateUser)
	r.PATCH("/users", handlers.TouchLastSignIn)
	r.DELETE("/users/:id", handlers.DeleteUser)
	r.GET("/watchlist", handlers.GetWatchlist)
	r.GET("/stats", handlers.GetDashboardStats)

	// Routes that stamp authorship require a bound identity
	protected := r.Group("/").Use(handlers.RequireIdentity())
	{
		protected.POST("/review", handlers.CreateReview)
		protected.PUT("/review/:id", handlers.UpdateReview)
		protected.DELETE("/review/:id", handlers.DeleteReview)
		protected.POST("/watchlist", handlers.AddToWatchlist)
		protected.DELETE("/watchlist/:id", handlers.RemoveFromWatchlist)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	useHTTPS := os.Getenv("USE_HTTPS") == "true"
	certFile := os.Getenv("TLS_CERT_FILE")
	keyFile := os.Getenv("TLS_KEY_FILE")

	if useHTTPS && certFile != "" && keyFile != "" {
		utils.Log.Info("Starting server with HTTPS on port " + port)

		tlsConfig := &tls.Config{
			MinVersion:       tls.VersionTLS12,
			CurvePreferences: []tls.CurveID{tls.CurveP521, tls.CurveP384, tls.CurveP256},
		}

		server := &http.Server{
			Addr:      ":" + port,
			Handler:   r,
			TLSConfig: tlsConfig,
		}

		if err := server.ListenAndServeTLS(certFile, keyFile); err != nil {
			utils.Log.Fatal("Failed to start HTTPS server: ", err)
		}
	} else {
		utils.Log.Info("Starting server with HTTP on port " + port)
		if err := r.Run(":" + port); err != nil {
			utils.Log.Fatal("Failed to start server: ", err)
		}
	}
}
