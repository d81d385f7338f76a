package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/RayanAlrsheed/GraduationProject/database"
	"github.com/RayanAlrsheed/GraduationProject/models"
	"github.com/RayanAlrsheed/GraduationProject/utils"
)

// HandleGetSettings returns the caller's profile and restaurant
// location.
// GET /api/v1/settings
func HandleGetSettings(c *fiber.Ctx) error {
	userID := currentUserID(c)
	ctx := context.Background()

	var user models.User
	query := `SELECT id, first_name, last_name, email, role, phone, created_at FROM users WHERE id = $1`
	err := database.GetDB().QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Role, &user.Phone, &user.CreatedAt,
	)
	if err != nil {
		log.Printf("Error fetching user %s: %v", userID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "User not found"})
	}

	restaurant, err := database.LoadRestaurant(ctx, userID)
	if err != nil {
		log.Printf("Error loading restaurant for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load restaurant"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{"user": user, "location": restaurant.Location}})
}

// HandleUpdateSettings updates the caller's profile, restaurant
// location, and optionally the password. Password fields may be left
// empty to keep the current one; when either is set, both must match
// and satisfy the policy.
// PUT /api/v1/settings
func HandleUpdateSettings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req models.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" || req.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Please fill the form completely"})
	}
	if (req.Password == "") != (req.Password2 == "") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Please fill the form completely"})
	}
	if req.Password != "" && req.Password != req.Password2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Passwords do not match"})
	}
	if !utils.ValidPhone(req.Phone) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Please enter your phone number correctly"})
	}
	if req.Password != "" && !utils.ValidPassword(req.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Please use a stronger password"})
	}

	ctx := context.Background()
	db := database.GetDB()

	var taken bool
	if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`, req.Email, userID).Scan(&taken); err != nil {
		log.Printf("Error checking email uniqueness: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}
	if taken {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Email already registered"})
	}

	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not process password"})
		}
		_, err = db.Exec(ctx, `
			UPDATE users SET first_name = $1, last_name = $2, email = $3, phone = $4, password_hash = $5
			WHERE id = $6
		`, req.FirstName, req.LastName, req.Email, req.Phone, string(hashedPassword), userID)
		if err != nil {
			log.Printf("Error updating user %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not update settings"})
		}
	} else {
		_, err := db.Exec(ctx, `
			UPDATE users SET first_name = $1, last_name = $2, email = $3, phone = $4
			WHERE id = $5
		`, req.FirstName, req.LastName, req.Email, req.Phone, userID)
		if err != nil {
			log.Printf("Error updating user %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not update settings"})
		}
	}

	restaurant, err := database.LoadRestaurant(ctx, userID)
	if err != nil {
		log.Printf("Error loading restaurant for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load restaurant"})
	}
	restaurant.Location = req.Location
	if err := database.SaveRestaurant(ctx, restaurant); err != nil {
		log.Printf("Error saving restaurant for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save restaurant"})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// HandleDeleteAccount removes the caller's account. The menu document
// and both ledgers go with it via ON DELETE CASCADE.
// DELETE /api/v1/account
func HandleDeleteAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	tag, err := database.GetDB().Exec(context.Background(), `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		log.Printf("Error deleting user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not delete account"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "User not found"})
	}

	return HandleLogout(c)
}
