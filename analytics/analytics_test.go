package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RayanAlrsheed/GraduationProject/models"
)

func TestWeeklyTopSellersWindowAndSlots(t *testing.T) {
	today := models.NewDate(2026, time.April, 15)
	ledger := &models.OrderLedger{UserID: "u1"}

	// Inside the window: yesterday lands in the last slot, the oldest
	// qualifying day in the first.
	ledger.AddSale(today.AddDays(-1), "burger", 10)
	ledger.AddSale(today.AddDays(-7), "burger", 1)
	ledger.AddSale(today.AddDays(-3), "fries", 5)

	// Outside the window: today and eight days ago must not count.
	ledger.AddSale(today, "burger", 99)
	ledger.AddSale(today.AddDays(-8), "burger", 99)

	report := WeeklyTopSellers(ledger, today)

	assert.Equal(t, []string{"04/08", "04/09", "04/10", "04/11", "04/12", "04/13", "04/14"}, report.Labels)

	assert.Len(t, report.Items, 2)
	burger := report.Items[0]
	assert.Equal(t, "burger", burger.ItemID)
	assert.Equal(t, 11.0, burger.Total)
	assert.Equal(t, [7]float64{1, 0, 0, 0, 0, 0, 10}, burger.Daily)

	fries := report.Items[1]
	assert.Equal(t, "fries", fries.ItemID)
	assert.Equal(t, 5.0, fries.Total)
	assert.Equal(t, [7]float64{0, 0, 0, 0, 5, 0, 0}, fries.Daily)
}

func TestWeeklyTopSellersTruncatesToFive(t *testing.T) {
	today := models.NewDate(2026, time.April, 15)
	ledger := &models.OrderLedger{UserID: "u1"}

	items := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, id := range items {
		ledger.AddSale(today.AddDays(-2), id, float64(10*(i+1)))
	}

	report := WeeklyTopSellers(ledger, today)

	assert.Len(t, report.Items, 5)
	assert.Equal(t, "g", report.Items[0].ItemID)
	assert.Equal(t, 70.0, report.Items[0].Total)
	assert.Equal(t, "c", report.Items[4].ItemID)
}

func TestWeeklyTopSellersEmptyLedger(t *testing.T) {
	today := models.NewDate(2026, time.April, 15)
	report := WeeklyTopSellers(&models.OrderLedger{UserID: "u1"}, today)

	assert.Len(t, report.Labels, 7)
	assert.Empty(t, report.Items)
}

func TestMonthlySalesFullYear(t *testing.T) {
	today := models.NewDate(2026, time.April, 15)
	ledger := &models.OrderLedger{UserID: "u1"}

	// One unit per day over the whole trailing year, starting the day
	// after the lookback cutoff (2025-04-30).
	start := models.NewDate(2025, time.May, 1)
	end := models.NewDate(2026, time.April, 30)
	for d := start; !d.After(end.Time); d = d.AddDays(1) {
		ledger.AddSale(d, "burger", 1)
	}

	// On and before the cutoff: must not contribute.
	ledger.AddSale(models.NewDate(2025, time.April, 30), "burger", 50)
	ledger.AddSale(models.NewDate(2025, time.March, 10), "burger", 50)

	report := MonthlySales(ledger, today)

	assert.Equal(t, []string{"May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "Jan", "Feb", "Mar", "Apr"}, report.Labels)
	assert.Equal(t, []float64{31, 30, 31, 31, 30, 31, 30, 31, 31, 28, 31, 30}, report.Totals)
}

func TestMonthlySalesSumsAcrossItems(t *testing.T) {
	today := models.NewDate(2026, time.April, 15)
	ledger := &models.OrderLedger{UserID: "u1"}

	ledger.AddSale(models.NewDate(2026, time.January, 10), "burger", 3)
	ledger.AddSale(models.NewDate(2026, time.January, 10), "fries", 4)
	ledger.AddSale(models.NewDate(2026, time.January, 20), "burger", 2)

	report := MonthlySales(ledger, today)

	// January is the ninth bucket when April is the current month.
	assert.Equal(t, "Jan", report.Labels[8])
	assert.Equal(t, 9.0, report.Totals[8])
}

func TestUnusedItems(t *testing.T) {
	restaurant := &models.Restaurant{UserID: "u1"}
	restaurant.AddItem("burger", "Burger")
	restaurant.AddItem("fries", "Fries")
	restaurant.AddItem("shake", "Shake")

	order := &models.Order{Date: models.NewDate(2026, time.April, 15)}
	order.AddSale("fries", 2)

	assert.Equal(t, []string{"burger", "shake"}, UnusedItems(order, restaurant))
	assert.Equal(t, []string{"burger", "fries", "shake"}, UnusedItems(nil, restaurant))
}
