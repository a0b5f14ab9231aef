package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/venturemate/marketplace-go/config"
	"github.com/venturemate/marketplace-go/db"
	_ "github.com/venturemate/marketplace-go/docs"
	"github.com/venturemate/marketplace-go/middleware"
	"github.com/venturemate/marketplace-go/minio"
	"github.com/venturemate/marketplace-go/routes"
)

// @title VentureMate Marketplace API
// @version 1.0
// @description Marketplace backend connecting entrepreneurs and students.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and schema
	db.Init()

	// Initialize object storage for project documents
	minio.InitMinio()

	r := gin.Default()
	r.Use(middleware.CORS())

	svc := routes.RegisterRoutes(r, minio.NewStore())

	if config.CatalogSeed != "" {
		if err := svc.Catalog.SeedFromYAML(config.CatalogSeed); err != nil {
			log.Printf("catalog seed: %v", err)
		}
	}

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
