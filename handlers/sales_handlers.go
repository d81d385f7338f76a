package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RayanAlrsheed/GraduationProject/analytics"
	"github.com/RayanAlrsheed/GraduationProject/database"
	"github.com/RayanAlrsheed/GraduationProject/models"
)

// HandleGetSales returns the sales recorded for a date together with
// the menu items that have no sale entry yet, which the UI offers in
// its "add sale" form.
// GET /api/v1/sales?date=YYYY-MM-DD
func HandleGetSales(c *fiber.Ctx) error {
	userID := currentUserID(c)

	date, err := models.ParseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid or missing date"})
	}

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

	order, _ := ledger.GetOrder(date)
	sales := []models.Sale{}
	if order != nil {
		sales = order.Sales
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"date":   date.String(),
		"sales":  sales,
		"unused": analytics.UnusedItems(order, restaurant),
	}})
}

// HandleAddSale records one sale. A sale for the same item on the same
// date is a duplicate and is rejected.
// POST /api/v1/sales
func HandleAddSale(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req models.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	date, err := models.ParseDate(req.Date)
	if err != nil || req.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Date and item id are required"})
	}

	unlock := database.LockAccount(userID)
	defer unlock()

	ctx := context.Background()
	ledger, err := database.LoadOrderLedger(ctx, userID)
	if err != nil {
		log.Printf("Error loading order ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load sales"})
	}

	if !ledger.AddSale(date, req.ItemID, req.Quantity) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Sale already recorded for this item and date"})
	}
	if err := database.SaveOrderLedger(ctx, ledger); err != nil {
		log.Printf("Error saving order ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save sale"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success"})
}

// HandleUpdateSale changes the quantity of an existing sale. A zero
// quantity is accepted but leaves the stored value unchanged.
// PUT /api/v1/sales
func HandleUpdateSale(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req models.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	date, err := models.ParseDate(req.Date)
	if err != nil || req.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Date and item id are required"})
	}

	unlock := database.LockAccount(userID)
	defer unlock()

	ctx := context.Background()
	ledger, err := database.LoadOrderLedger(ctx, userID)
	if err != nil {
		log.Printf("Error loading order ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load sales"})
	}

	if !ledger.ModifySale(date, req.ItemID, req.Quantity) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "No sale recorded for this item and date"})
	}
	if err := database.SaveOrderLedger(ctx, ledger); err != nil {
		log.Printf("Error saving order ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save sale"})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// HandleRemoveSale deletes a sale; removing the last sale of a day
// removes the day's order entirely.
// DELETE /api/v1/sales
func HandleRemoveSale(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req models.RemoveSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	date, err := models.ParseDate(req.Date)
	if err != nil || req.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Date and item id are required"})
	}

	unlock := database.LockAccount(userID)
	defer unlock()

	ctx := context.Background()
	ledger, err := database.LoadOrderLedger(ctx, userID)
	if err != nil {
		log.Printf("Error loading order ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load sales"})
	}

	if !ledger.RemoveSale(date, req.ItemID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "No sale recorded for this item and date"})
	}
	if err := database.SaveOrderLedger(ctx, ledger); err != nil {
		log.Printf("Error saving order ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save sale"})
	}

	return c.JSON(fiber.Map{"status": "success"})
}
