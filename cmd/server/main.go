package main

import (
	"os"
	"strings"

	"feedwall/internal/db"
	"feedwall/internal/middleware"
	"feedwall/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading env vars from system")
	}

	// Initialize Database
	database, err := db.Init()
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}

	// Initialize Gin
	r := gin.Default()

	// 嵌入组件会在第三方站点里跨域拉取帖子接口，需要放开 CORS
	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	// Middleware
	r.Use(middleware.RequestLogger())

	// Routes
	router.RegisterRoutes(r, database)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("feedwall server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
