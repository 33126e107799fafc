package main

import (
	"log"

	"lumina/config"
	"lumina/database"
	authRoutes "lumina/routers/authRoutes"
	courseRoutes "lumina/routers/courseRoutes"
	feedRoutes "lumina/routers/feedRoutes"
	userRoutes "lumina/routers/userRoutes"
	"lumina/store"
	"lumina/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	store.Init(database.Database.Db)
	if config.AppConfig.SeedDemoData {
		store.Default.Seed()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	feedRoutes.SetupFeedRoutes(app)

	utils.StartReminderScheduler(store.Default)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
