// Package analytics implements the read-only dashboard queries over an
// account's order ledger: the trailing-week top-seller matrix and the
// rolling 12-month totals. All queries are calendar-anchored to the
// caller-supplied "today" and never mutate the ledger.
package analytics

import (
	"sort"
	"time"

	"github.com/RayanAlrsheed/GraduationProject/models"
)

// weeklyWindow is the number of trailing days the weekly report covers.
const weeklyWindow = 7

// weeklyTopN limits the weekly report to the most active items.
const weeklyTopN = 5

// WeeklyTopSellers aggregates per-item quantities over the seven
// calendar days ending yesterday (today itself is excluded). Items are
// ranked by window total, descending, and truncated to the top five.
// Labels are MM/DD, oldest day first, and each item's Daily slot k
// holds the quantity sold on the day Labels[k] names. Items with no
// sales in the window are absent entirely.
func WeeklyTopSellers(ledger *models.OrderLedger, today models.Date) models.WeeklySalesReport {
	labels := make([]string, weeklyWindow)
	for i := 0; i < weeklyWindow; i++ {
		labels[i] = today.AddDays(i - weeklyWindow).Format("01/02")
	}

	byItem := make(map[string]*models.WeeklyItemRow)
	for _, order := range ledger.Orders {
		age := today.DaysSince(order.Date)
		if age < 1 || age > weeklyWindow {
			continue
		}
		slot := weeklyWindow - age
		for _, sale := range order.Sales {
			row, ok := byItem[sale.ItemID]
			if !ok {
				row = &models.WeeklyItemRow{ItemID: sale.ItemID}
				byItem[sale.ItemID] = row
			}
			row.Daily[slot] += sale.Quantity
			row.Total += sale.Quantity
		}
	}

	rows := make([]models.WeeklyItemRow, 0, len(byItem))
	for _, row := range byItem {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].ItemID < rows[j].ItemID
	})
	if len(rows) > weeklyTopN {
		rows = rows[:weeklyTopN]
	}

	return models.WeeklySalesReport{Labels: labels, Items: rows}
}

// MonthlySales sums all sale quantities into calendar-month buckets
// over the trailing twelve months. The report runs oldest month first
// and ends with the current month; only orders dated strictly after
// the last day of the current month in the prior year contribute, so
// the oldest bucket never mixes two years of the same month.
func MonthlySales(ledger *models.OrderLedger, today models.Date) models.MonthlySalesReport {
	labels := make([]string, 12)
	for i := 0; i < 12; i++ {
		month := time.Month((int(today.Month())+i)%12 + 1)
		labels[i] = month.String()[:3]
	}

	cutoff := endOfMonth(today.Year()-1, today.Month())

	totals := make([]float64, 12)
	for _, order := range ledger.Orders {
		if !order.Date.After(cutoff.Time) {
			continue
		}
		bucket := (int(order.Date.Month()) - int(today.Month()) - 1 + 24) % 12
		totals[bucket] += order.Total()
	}

	return models.MonthlySalesReport{Labels: labels, Totals: totals}
}

// endOfMonth walks forward from day 28 until the next day would roll
// into a different month, landing on the true last day regardless of
// month length or leap years.
func endOfMonth(year int, month time.Month) models.Date {
	day := models.NewDate(year, month, 28)
	for day.AddDays(1).Month() == month {
		day = day.AddDays(1)
	}
	return day
}

// UnusedItems lists the menu item ids with no sale entry in the given
// order. A nil order means no sales were recorded for that date yet,
// so every menu item is unused.
func UnusedItems(order *models.Order, restaurant *models.Restaurant) []string {
	if order == nil {
		return restaurant.ItemIDs()
	}
	unused := make([]string, 0, len(restaurant.Menu))
	for _, item := range restaurant.Menu {
		if !order.HasItem(item.ID) {
			unused = append(unused, item.ID)
		}
	}
	return unused
}
