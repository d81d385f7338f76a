package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RayanAlrsheed/GraduationProject/analytics"
	"github.com/RayanAlrsheed/GraduationProject/database"
	"github.com/RayanAlrsheed/GraduationProject/models"
)

// HandleGetDashboardSummary returns both dashboard aggregates: the
// trailing-week top sellers and the rolling 12-month totals.
// GET /api/v1/dashboard/summary
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	userID := currentUserID(c)

	ledger, err := database.LoadOrderLedger(context.Background(), userID)
	if err != nil {
		log.Printf("Error loading order ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load sales"})
	}

	today := models.Today()
	summary := models.DashboardSummary{
		Weekly:  analytics.WeeklyTopSellers(ledger, today),
		Monthly: analytics.MonthlySales(ledger, today),
	}

	return c.JSON(fiber.Map{"status": "success", "data": summary})
}
