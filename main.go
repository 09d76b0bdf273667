package main

import (
	"log"

	"pitchhub/config"
	"pitchhub/database"
	authRoutes "pitchhub/routers/authRoutes"
	investorRoutes "pitchhub/routers/investorRoutes"
	marketRoutes "pitchhub/routers/marketRoutes"
	pitchRoutes "pitchhub/routers/pitchRoutes"
	"pitchhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files (chart artifacts live under public/charts)
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	pitchRoutes.SetupPitchRoutes(app)
	investorRoutes.SetupInvestorRoutes(app)
	marketRoutes.SetupMarketRoutes(app)

	utils.StartChartJanitor()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
