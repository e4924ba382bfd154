package main

import (
	"learnvilla/config"
	"learnvilla/database"
	authRoutes "learnvilla/routers/authRoutes"
	courseRoutes "learnvilla/routers/courseRoutes"
	supportRoutes "learnvilla/routers/supportRoutes"
	wishlistRoutes "learnvilla/routers/wishlistRoutes"
	"learnvilla/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	database.SeedAdminAccount(database.Database.Db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	wishlistRoutes.SetupWishlistRoutes(app)
	supportRoutes.SetupSupportRoutes(app)

	utils.InitializeRetentionScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
