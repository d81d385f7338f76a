package models

import "time"

// WeeklySalesReport is the dashboard payload for the trailing-week
// top-seller matrix. Labels and the per-item daily slots are aligned,
// oldest day first.
type WeeklySalesReport struct {
	Labels []string        `json:"labels"`
	Items  []WeeklyItemRow `json:"items"`
}

// WeeklyItemRow is one item's trailing-week sales vector.
type WeeklyItemRow struct {
	ItemID string     `json:"item_id"`
	Daily  [7]float64 `json:"daily"`
	Total  float64    `json:"total"`
}

// MonthlySalesReport is the dashboard payload for the rolling 12-month
// totals, oldest month first.
type MonthlySalesReport struct {
	Labels []string  `json:"labels"`
	Totals []float64 `json:"totals"`
}

// DashboardSummary bundles both dashboard aggregates.
type DashboardSummary struct {
	Weekly  WeeklySalesReport  `json:"weekly"`
	Monthly MonthlySalesReport `json:"monthly"`
}

// ForecastResponse reports the outcome of a forecast run.
type ForecastResponse struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Order       Order     `json:"order"`
}

// AiInsights contains the qualitative narration of the dashboard
// aggregates produced by the Gemini model.
type AiInsights struct {
	Summary string `json:"summary"`
}
