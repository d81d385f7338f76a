package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/RayanAlrsheed/GraduationProject/config"
	"github.com/RayanAlrsheed/GraduationProject/database"
	"github.com/RayanAlrsheed/GraduationProject/forecast"
	"github.com/RayanAlrsheed/GraduationProject/handlers"
	"github.com/RayanAlrsheed/GraduationProject/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	predictorURL := os.Getenv("PREDICTOR_URL")
	if predictorURL == "" {
		log.Fatal("PREDICTOR_URL is not set")
	}

	predictorTimeout := 10 * time.Second
	if raw := os.Getenv("PREDICTOR_TIMEOUT"); raw != "" {
		predictorTimeout, err = time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid PREDICTOR_TIMEOUT: %v", err)
		}
	}

	holidayFile := os.Getenv("HOLIDAY_FILE")
	if holidayFile == "" {
		holidayFile = "holidays.yml"
	}

	// Set up the application configuration
	config.AppConfig.JWTSecret = jwtSecret
	config.AppConfig.DatabaseURL = databaseURL
	config.AppConfig.PredictorURL = predictorURL
	config.AppConfig.PredictorTimeout = predictorTimeout
	config.AppConfig.HolidayFile = holidayFile
	config.AppConfig.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	// Holiday calendar is loaded once and immutable afterwards.
	holidays, err := forecast.LoadHolidays(holidayFile)
	if err != nil {
		log.Fatalf("Failed to load holiday calendar: %v", err)
	}
	handlers.ForecastEngine = forecast.NewEngine(holidays,
		forecast.NewHTTPPredictor(predictorURL, predictorTimeout))

	// Initialize database
	database.InitDB(databaseURL)
	defer database.CloseDB()

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":3000"))
}
