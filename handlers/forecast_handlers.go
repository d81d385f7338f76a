package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RayanAlrsheed/GraduationProject/database"
	"github.com/RayanAlrsheed/GraduationProject/forecast"
	"github.com/RayanAlrsheed/GraduationProject/models"
)

// ForecastEngine is shared by every forecast request. Wired in main
// after the holiday calendar and predictor are configured.
var ForecastEngine *forecast.Engine

// HandleRunForecast runs the forecast engine against the caller's
// ledger and stores the resulting synthetic order in the prediction
// ledger, replacing any earlier forecast for the same target date.
// Nothing is persisted on failure.
// POST /api/v1/forecast/run
func HandleRunForecast(c *fiber.Ctx) error {
	userID := currentUserID(c)

	unlock := database.LockAccount(userID)
	defer unlock()

	ctx := context.Background()
	ledger, err := database.LoadOrderLedger(ctx, userID)
	if err != nil {
		log.Printf("Error loading order ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load sales"})
	}
	restaurant, err := database.LoadRestaurant(ctx, userID)
	if err != nil {
		log.Printf("Error loading restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load menu"})
	}

	order, err := ForecastEngine.Run(ctx, ledger, restaurant)
	if err != nil {
		switch {
		case errors.Is(err, forecast.ErrNoSalesData),
			errors.Is(err, forecast.ErrMissingAnchor),
			errors.Is(err, forecast.ErrNoEligibleItems):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Not enough sales data to forecast"})
		}
		log.Printf("Forecast run failed for user %s: %v", userID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "Prediction service unavailable"})
	}

	predictions, err := database.LoadPredictionLedger(ctx, userID)
	if err != nil {
		log.Printf("Error loading prediction ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load forecasts"})
	}
	predictions.PutOrder(order)
	if err := database.SavePredictionLedger(ctx, predictions); err != nil {
		log.Printf("Error saving prediction ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save forecast"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": models.ForecastResponse{
		GeneratedAt: time.Now().UTC(),
		Order:       order,
	}})
}

// HandleGetForecast returns the stored forecast for a date, or the
// latest one when no date is given.
// GET /api/v1/forecast?date=YYYY-MM-DD
func HandleGetForecast(c *fiber.Ctx) error {
	userID := currentUserID(c)

	predictions, err := database.LoadPredictionLedger(context.Background(), userID)
	if err != nil {
		log.Printf("Error loading prediction ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load forecasts"})
	}

	var order *models.Order
	if raw := c.Query("date"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid date"})
		}
		order, _ = predictions.GetOrder(date)
	} else {
		order, _ = predictions.LatestOrder()
	}

	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "No forecast available"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": order})
}
