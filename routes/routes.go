package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RayanAlrsheed/GraduationProject/handlers"
	"github.com/RayanAlrsheed/GraduationProject/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/register", handlers.HandleRegister)
	auth.Post("/login", handlers.HandleLogin)
	auth.Get("/logout", middleware.JWTMiddleware, handlers.HandleLogout)

	// --- Account Routes ---
	api.Get("/settings", middleware.JWTMiddleware, handlers.HandleGetSettings)
	api.Put("/settings", middleware.JWTMiddleware, handlers.HandleUpdateSettings)
	api.Delete("/account", middleware.JWTMiddleware, handlers.HandleDeleteAccount)

	// --- Restaurant Routes ---
	restaurant := api.Group("/", middleware.JWTMiddleware, middleware.RestaurantRequired)

	menu := restaurant.Group("/menu")
	menu.Get("/", handlers.HandleGetMenu)
	menu.Post("/items", handlers.HandleAddMenuItem)
	menu.Put("/items/:itemId", handlers.HandleUpdateMenuItem)
	menu.Delete("/items/:itemId", handlers.HandleRemoveMenuItem)
	menu.Post("/items/:itemId/ingredients", handlers.HandleAddIngredient)
	menu.Put("/items/:itemId/ingredients/:index", handlers.HandleUpdateIngredient)
	menu.Delete("/items/:itemId/ingredients/:index", handlers.HandleRemoveIngredient)

	sales := restaurant.Group("/sales")
	sales.Get("/", handlers.HandleGetSales)
	sales.Post("/", handlers.HandleAddSale)
	sales.Put("/", handlers.HandleUpdateSale)
	sales.Delete("/", handlers.HandleRemoveSale)
	sales.Post("/upload", handlers.HandleUploadSales)

	restaurant.Get("/dashboard/summary", handlers.HandleGetDashboardSummary)
	restaurant.Get("/dashboard/insights", handlers.HandleGetInsights)

	restaurant.Post("/forecast/run", handlers.HandleRunForecast)
	restaurant.Get("/forecast", handlers.HandleGetForecast)

	restaurant.Get("/charities", handlers.HandleListNearbyCharities)

	// --- Admin Routes ---
	admin := api.Group("/admin", middleware.JWTMiddleware, middleware.AdminRequired)
	admin.Get("/charities", handlers.HandleListCharities)
	admin.Post("/charities", handlers.HandleCreateCharity)
	admin.Put("/charities/:charityId", handlers.HandleUpdateCharity)
	admin.Delete("/charities/:charityId", handlers.HandleDeleteCharity)
}
