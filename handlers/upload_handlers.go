package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RayanAlrsheed/GraduationProject/database"
	"github.com/RayanAlrsheed/GraduationProject/utils"
)

// HandleUploadSales imports a CSV of sales. Rows are applied with
// add-or-update semantics, so re-uploading a corrected file overwrites
// earlier quantities, and the ledger is saved once after the whole
// file is applied.
// POST /api/v1/sales/upload (multipart, field "file")
func HandleUploadSales(c *fiber.Ctx) error {
	userID := currentUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Missing file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Could not read file"})
	}
	defer file.Close()

	rows, err := utils.ParseSalesCSV(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Make sure the columns are in order: id, quantity, date (MM/DD/YYYY), and the file is saved as CSV UTF-8",
		})
	}

	unlock := database.LockAccount(userID)
	defer unlock()

	ctx := context.Background()
	ledger, err := database.LoadOrderLedger(ctx, userID)
	if err != nil {
		log.Printf("Error loading order ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load sales"})
	}

	for _, row := range rows {
		ledger.AddOrUpdateSale(row.Date, row.ItemID, row.Quantity)
	}

	if err := database.SaveOrderLedger(ctx, ledger); err != nil {
		log.Printf("Error saving order ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save sales"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{"imported": len(rows)}})
}
