package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/RayanAlrsheed/GraduationProject/analytics"
	"github.com/RayanAlrsheed/GraduationProject/config"
	"github.com/RayanAlrsheed/GraduationProject/database"
	"github.com/RayanAlrsheed/GraduationProject/models"
)

// HandleGetInsights narrates the dashboard aggregates with the Gemini
// model: what sold best over the last week, how the year is trending,
// and anything an owner should act on.
// GET /api/v1/dashboard/insights
func HandleGetInsights(c *fiber.Ctx) error {
	if config.AppConfig.GeminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Insights are not configured"})
	}

	userID := currentUserID(c)
	ctx := context.Background()

	ledger, err := database.LoadOrderLedger(ctx, userID)
	if err != nil {
		log.Printf("Error loading order ledger: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load sales"})
	}

	today := models.Today()
	weekly := analytics.WeeklyTopSellers(ledger, today)
	monthly := analytics.MonthlySales(ledger, today)

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to initialize insights client"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro-latest")
	resp, err := model.GenerateContent(ctx, genai.Text(insightsPrompt(weekly, monthly)))
	if err != nil {
		log.Printf("Error generating insights: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to generate insights"})
	}

	var summary strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				summary.WriteString(string(text))
			}
		}
	}

	return c.JSON(fiber.Map{"status": "success", "data": models.AiInsights{Summary: summary.String()}})
}

func insightsPrompt(weekly models.WeeklySalesReport, monthly models.MonthlySalesReport) string {
	var b strings.Builder
	b.WriteString("You are a restaurant business analyst. Summarize the following sales data in a short paragraph for the owner, highlighting the strongest items and any notable trend.\n\n")

	b.WriteString("Top sellers over the last 7 days (days: " + strings.Join(weekly.Labels, ", ") + "):\n")
	for _, item := range weekly.Items {
		fmt.Fprintf(&b, "- %s: total %.1f, daily %v\n", item.ItemID, item.Total, item.Daily)
	}

	b.WriteString("\nMonthly totals for the last 12 months:\n")
	for i, label := range monthly.Labels {
		fmt.Fprintf(&b, "- %s: %.1f\n", label, monthly.Totals[i])
	}
	return b.String()
}
