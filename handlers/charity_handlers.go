package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RayanAlrsheed/GraduationProject/database"
	"github.com/RayanAlrsheed/GraduationProject/models"
)

// HandleListCharities lists every charity in the directory.
// GET /api/v1/admin/charities
func HandleListCharities(c *fiber.Ctx) error {
	rows, err := database.GetDB().Query(context.Background(),
		`SELECT id, name, phone, location, location_url FROM charities ORDER BY name`)
	if err != nil {
		log.Printf("Error listing charities: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to list charities"})
	}
	defer rows.Close()

	charities := []models.Charity{}
	for rows.Next() {
		var charity models.Charity
		if err := rows.Scan(&charity.ID, &charity.Name, &charity.Phone, &charity.Location, &charity.LocationURL); err != nil {
			log.Printf("Error scanning charity: %v", err)
			continue
		}
		charities = append(charities, charity)
	}

	return c.JSON(fiber.Map{"status": "success", "data": charities})
}

// HandleCreateCharity adds a charity to the directory.
// POST /api/v1/admin/charities
func HandleCreateCharity(c *fiber.Ctx) error {
	var req models.CharityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if req.Name == "" || req.Phone == "" || req.Location == "" || req.LocationURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Missing required fields (name, phone, location, locationUrl)"})
	}

	var charity models.Charity
	err := database.GetDB().QueryRow(context.Background(), `
		INSERT INTO charities (name, phone, location, location_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, phone, location, location_url
	`, req.Name, req.Phone, req.Location, req.LocationURL).Scan(
		&charity.ID, &charity.Name, &charity.Phone, &charity.Location, &charity.LocationURL,
	)
	if err != nil {
		log.Printf("Error creating charity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create charity"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": charity})
}

// HandleUpdateCharity updates a charity entry.
// PUT /api/v1/admin/charities/:charityId
func HandleUpdateCharity(c *fiber.Ctx) error {
	charityID := c.Params("charityId")

	var req models.CharityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if req.Name == "" || req.Phone == "" || req.Location == "" || req.LocationURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Missing required fields (name, phone, location, locationUrl)"})
	}

	tag, err := database.GetDB().Exec(context.Background(), `
		UPDATE charities SET name = $1, phone = $2, location = $3, location_url = $4
		WHERE id = $5
	`, req.Name, req.Phone, req.Location, req.LocationURL, charityID)
	if err != nil {
		log.Printf("Error updating charity %s: %v", charityID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Failed to update charity"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Charity not found"})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// HandleDeleteCharity removes a charity from the directory.
// DELETE /api/v1/admin/charities/:charityId
func HandleDeleteCharity(c *fiber.Ctx) error {
	charityID := c.Params("charityId")

	tag, err := database.GetDB().Exec(context.Background(), `DELETE FROM charities WHERE id = $1`, charityID)
	if err != nil {
		log.Printf("Error deleting charity %s: %v", charityID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Failed to delete charity"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Charity not found"})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// HandleListNearbyCharities lists charities located in the same city
// as the caller's restaurant.
// GET /api/v1/charities
func HandleListNearbyCharities(c *fiber.Ctx) error {
	userID := currentUserID(c)
	ctx := context.Background()

	restaurant, err := database.LoadRestaurant(ctx, userID)
	if err != nil {
		log.Printf("Error loading restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load restaurant"})
	}

	rows, err := database.GetDB().Query(ctx,
		`SELECT id, name, phone, location, location_url FROM charities WHERE location = $1 ORDER BY name`,
		restaurant.Location)
	if err != nil {
		log.Printf("Error listing nearby charities: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to list charities"})
	}
	defer rows.Close()

	charities := []models.Charity{}
	for rows.Next() {
		var charity models.Charity
		if err := rows.Scan(&charity.ID, &charity.Name, &charity.Phone, &charity.Location, &charity.LocationURL); err != nil {
			log.Printf("Error scanning charity: %v", err)
			continue
		}
		charities = append(charities, charity)
	}

	return c.JSON(fiber.Map{"status": "success", "data": charities})
}
