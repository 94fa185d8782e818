package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"madrasati/config"
	"madrasati/db"
	"madrasati/middleware"
	"madrasati/routes"
)

func main() {
	seedDemo := flag.Bool("seed-demo-data", false, "insert the demo dataset if the database is empty")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *seedDemo {
		cfg.SeedDemoData = true
	}
	config.ConfigInstance = cfg

	if err := db.InitDatabaseConnection(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database connection: %v", err)
	}
	defer db.CloseConnection()

	if err := db.CreateSchema(db.DB); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.SeedAdmin(db.DB); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	if cfg.SeedDemoData {
		if err := db.SeedDemoData(db.DB); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	middleware.ApplyMiddleware(router)

	router.Use(func(c *gin.Context) {
		c.Set("db", db.DB)
		c.Next()
	})

	router.Static("/uploads", cfg.UploadDir)

	routes.SetupRoutes(router)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(router.Run(":" + port))
}
