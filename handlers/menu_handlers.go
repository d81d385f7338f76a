package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RayanAlrsheed/GraduationProject/database"
	"github.com/RayanAlrsheed/GraduationProject/models"
)

// HandleGetMenu returns the caller's full menu.
// GET /api/v1/menu
func HandleGetMenu(c *fiber.Ctx) error {
	restaurant, err := database.LoadRestaurant(context.Background(), currentUserID(c))
	if err != nil {
		log.Printf("Error loading restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load menu"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": restaurant.Menu})
}

// HandleAddMenuItem adds a menu item.
// POST /api/v1/menu/items
func HandleAddMenuItem(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req models.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if req.ItemID == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Item id and name are required"})
	}

	unlock := database.LockAccount(userID)
	defer unlock()

	ctx := context.Background()
	restaurant, err := database.LoadRestaurant(ctx, userID)
	if err != nil {
		log.Printf("Error loading restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load menu"})
	}

	if !restaurant.AddItem(req.ItemID, req.Name) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Item id already exists"})
	}
	if err := database.SaveRestaurant(ctx, restaurant); err != nil {
		log.Printf("Error saving restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save menu"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": restaurant.Menu})
}

// HandleUpdateMenuItem renames a menu item and/or changes its id.
// PUT /api/v1/menu/items/:itemId
func HandleUpdateMenuItem(c *fiber.Ctx) error {
	userID := currentUserID(c)
	itemID := c.Params("itemId")

	var req models.UpdateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if req.NewItemID == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Item id and name are required"})
	}

	unlock := database.LockAccount(userID)
	defer unlock()

	ctx := context.Background()
	restaurant, err := database.LoadRestaurant(ctx, userID)
	if err != nil {
		log.Printf("Error loading restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load menu"})
	}

	if !restaurant.ModifyItem(itemID, req.NewItemID, req.Name) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Item not found"})
	}
	if err := database.SaveRestaurant(ctx, restaurant); err != nil {
		log.Printf("Error saving restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save menu"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": restaurant.Menu})
}

// HandleRemoveMenuItem deletes a menu item.
// DELETE /api/v1/menu/items/:itemId
func HandleRemoveMenuItem(c *fiber.Ctx) error {
	userID := currentUserID(c)
	itemID := c.Params("itemId")

	unlock := database.LockAccount(userID)
	defer unlock()

	ctx := context.Background()
	restaurant, err := database.LoadRestaurant(ctx, userID)
	if err != nil {
		log.Printf("Error loading restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load menu"})
	}

	if !restaurant.RemoveItem(itemID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Item not found"})
	}
	if err := database.SaveRestaurant(ctx, restaurant); err != nil {
		log.Printf("Error saving restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save menu"})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// HandleAddIngredient appends an ingredient to a menu item's recipe.
// POST /api/v1/menu/items/:itemId/ingredients
func HandleAddIngredient(c *fiber.Ctx) error {
	userID := currentUserID(c)
	itemID := c.Params("itemId")

	var req models.IngredientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if req.Name == "" || req.Unit == "" || req.Quantity == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Name, quantity and unit are required"})
	}

	unlock := database.LockAccount(userID)
	defer unlock()

	ctx := context.Background()
	restaurant, err := database.LoadRestaurant(ctx, userID)
	if err != nil {
		log.Printf("Error loading restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load menu"})
	}

	if !restaurant.AddIngredient(itemID, req.Name, req.Quantity, req.Unit) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Item not found or ingredient already exists"})
	}
	if err := database.SaveRestaurant(ctx, restaurant); err != nil {
		log.Printf("Error saving restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save menu"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success"})
}

// HandleUpdateIngredient replaces the ingredient at the given index.
// PUT /api/v1/menu/items/:itemId/ingredients/:index
func HandleUpdateIngredient(c *fiber.Ctx) error {
	userID := currentUserID(c)
	itemID := c.Params("itemId")
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid ingredient index"})
	}

	var req models.IngredientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if req.Name == "" || req.Unit == "" || req.Quantity == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Name, quantity and unit are required"})
	}

	unlock := database.LockAccount(userID)
	defer unlock()

	ctx := context.Background()
	restaurant, err := database.LoadRestaurant(ctx, userID)
	if err != nil {
		log.Printf("Error loading restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load menu"})
	}

	if !restaurant.ModifyIngredient(itemID, index, req.Name, req.Quantity, req.Unit) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Item or ingredient not found"})
	}
	if err := database.SaveRestaurant(ctx, restaurant); err != nil {
		log.Printf("Error saving restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save menu"})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// HandleRemoveIngredient deletes the ingredient at the given index.
// DELETE /api/v1/menu/items/:itemId/ingredients/:index
func HandleRemoveIngredient(c *fiber.Ctx) error {
	userID := currentUserID(c)
	itemID := c.Params("itemId")
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid ingredient index"})
	}

	unlock := database.LockAccount(userID)
	defer unlock()

	ctx := context.Background()
	restaurant, err := database.LoadRestaurant(ctx, userID)
	if err != nil {
		log.Printf("Error loading restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load menu"})
	}

	if !restaurant.RemoveIngredient(itemID, index) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Item or ingredient not found"})
	}
	if err := database.SaveRestaurant(ctx, restaurant); err != nil {
		log.Printf("Error saving restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save menu"})
	}

	return c.JSON(fiber.Map{"status": "success"})
}
