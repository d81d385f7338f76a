package forecast

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RayanAlrsheed/GraduationProject/models"
)

// stubPredictor records a copy of every feature vector it sees.
type stubPredictor struct {
	calls    [][]float64
	estimate float64
	err      error
}

func (s *stubPredictor) Predict(_ context.Context, features []float64) (float64, error) {
	captured := make([]float64, len(features))
	copy(captured, features)
	s.calls = append(s.calls, captured)
	return s.estimate, s.err
}

func testRestaurant(itemIDs ...string) *models.Restaurant {
	r := &models.Restaurant{UserID: "u1"}
	for _, id := range itemIDs {
		r.AddItem(id, id)
	}
	return r
}

func TestRunPredictsOnlyEligibleItems(t *testing.T) {
	// Latest order on Apr 14, anchor six days earlier on Apr 8.
	latest := models.NewDate(2026, time.April, 14)
	ledger := &models.OrderLedger{UserID: "u1"}
	ledger.AddSale(latest.AddDays(-6), "burger", 4)
	ledger.AddSale(latest, "burger", 9)
	ledger.AddSale(latest, "fries", 3) // missing the last-week anchor

	predictor := &stubPredictor{estimate: 7.456}
	engine := NewEngine(nil, predictor)

	order, err := engine.Run(context.Background(), ledger, testRestaurant("burger", "fries"))
	assert.NoError(t, err)

	assert.True(t, order.Date.Equal(models.NewDate(2026, time.April, 15)))
	assert.Len(t, order.Sales, 1)
	sale, ok := order.Sale("burger")
	assert.True(t, ok)
	assert.Equal(t, 7.46, sale.Quantity)
	assert.False(t, order.HasItem("fries"))
}

func TestRunFeatureVector(t *testing.T) {
	latest := models.NewDate(2026, time.April, 14)
	ledger := &models.OrderLedger{UserID: "u1"}
	ledger.AddSale(latest.AddDays(-6), "burger", 4)
	ledger.AddSale(latest, "burger", 9)

	predictor := &stubPredictor{estimate: 1}
	engine := NewEngine(nil, predictor)

	_, err := engine.Run(context.Background(), ledger, testRestaurant("burger"))
	assert.NoError(t, err)
	assert.Len(t, predictor.calls, 1)

	features := predictor.calls[0]
	assert.Len(t, features, 18)
	// Target day 2026-04-15 is a Wednesday outside any holiday, in
	// spring.
	expected := make([]float64, 18)
	expected[featLastWeek] = 4
	expected[featYesterday] = 9
	expected[itemSlotBase] = 1
	expected[seasonSlotBase+seasonSpring] = 1
	assert.Equal(t, expected, features)
}

func TestRunClearsItemSlotBetweenCalls(t *testing.T) {
	latest := models.NewDate(2026, time.April, 14)
	ledger := &models.OrderLedger{UserID: "u1"}
	anchor := latest.AddDays(-6)
	for _, id := range []string{"burger", "fries"} {
		ledger.AddSale(anchor, id, 2)
		ledger.AddSale(latest, id, 3)
	}

	predictor := &stubPredictor{estimate: 1}
	engine := NewEngine(nil, predictor)

	_, err := engine.Run(context.Background(), ledger, testRestaurant("burger", "fries"))
	assert.NoError(t, err)
	assert.Len(t, predictor.calls, 2)

	assert.Equal(t, 1.0, predictor.calls[0][itemSlotBase])
	assert.Equal(t, 0.0, predictor.calls[0][itemSlotBase+1])
	assert.Equal(t, 0.0, predictor.calls[1][itemSlotBase])
	assert.Equal(t, 1.0, predictor.calls[1][itemSlotBase+1])
}

func TestRunWeekendAndHolidayFlags(t *testing.T) {
	// Latest order Apr 15, so the target day Apr 16 is a Thursday.
	latest := models.NewDate(2026, time.April, 15)
	ledger := &models.OrderLedger{UserID: "u1"}
	ledger.AddSale(latest.AddDays(-6), "burger", 4)
	ledger.AddSale(latest, "burger", 9)

	holidays := []HolidayRange{{
		Start: models.NewDate(2026, time.April, 16),
		End:   models.NewDate(2026, time.April, 20),
	}}
	predictor := &stubPredictor{estimate: 1}
	engine := NewEngine(holidays, predictor)

	_, err := engine.Run(context.Background(), ledger, testRestaurant("burger"))
	assert.NoError(t, err)

	features := predictor.calls[0]
	assert.Equal(t, 1.0, features[featWeekend])
	assert.Equal(t, 1.0, features[featHoliday])
}

func TestRunFailsWithoutData(t *testing.T) {
	engine := NewEngine(nil, &stubPredictor{})
	restaurant := testRestaurant("burger")

	// Empty ledger.
	_, err := engine.Run(context.Background(), &models.OrderLedger{UserID: "u1"}, restaurant)
	assert.ErrorIs(t, err, ErrNoSalesData)

	// Latest order present but no last-week anchor.
	ledger := &models.OrderLedger{UserID: "u1"}
	ledger.AddSale(models.NewDate(2026, time.April, 14), "burger", 9)
	_, err = engine.Run(context.Background(), ledger, restaurant)
	assert.ErrorIs(t, err, ErrMissingAnchor)
}

func TestRunFailsWithZeroEligibleItems(t *testing.T) {
	latest := models.NewDate(2026, time.April, 14)
	ledger := &models.OrderLedger{UserID: "u1"}
	ledger.AddSale(latest.AddDays(-6), "burger", 4)
	ledger.AddSale(latest, "fries", 3)

	predictor := &stubPredictor{estimate: 1}
	engine := NewEngine(nil, predictor)

	_, err := engine.Run(context.Background(), ledger, testRestaurant("burger", "fries"))
	assert.ErrorIs(t, err, ErrNoEligibleItems)
	assert.Empty(t, predictor.calls)
}

func TestRunPredictorErrorAbortsRun(t *testing.T) {
	latest := models.NewDate(2026, time.April, 14)
	ledger := &models.OrderLedger{UserID: "u1"}
	ledger.AddSale(latest.AddDays(-6), "burger", 4)
	ledger.AddSale(latest, "burger", 9)

	predictor := &stubPredictor{err: errors.New("model server down")}
	engine := NewEngine(nil, predictor)

	_, err := engine.Run(context.Background(), ledger, testRestaurant("burger"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoEligibleItems)
}

func TestRunSkipsItemsBeyondOneHotCapacity(t *testing.T) {
	ids := []string{"i0", "i1", "i2", "i3", "i4", "i5", "i6", "i7", "i8", "i9", "i10", "i11"}
	restaurant := testRestaurant(ids...)

	latest := models.NewDate(2026, time.April, 14)
	ledger := &models.OrderLedger{UserID: "u1"}
	// Only the item past the capacity has data on both anchors.
	ledger.AddSale(latest.AddDays(-6), "i11", 4)
	ledger.AddSale(latest, "i11", 9)

	engine := NewEngine(nil, &stubPredictor{estimate: 1})

	_, err := engine.Run(context.Background(), ledger, restaurant)
	assert.ErrorIs(t, err, ErrNoEligibleItems)
}

func TestSeasonOf(t *testing.T) {
	cases := []struct {
		date   models.Date
		season int
	}{
		{models.NewDate(2026, time.September, 23), seasonAutumn},
		{models.NewDate(2026, time.November, 5), seasonAutumn},
		{models.NewDate(2026, time.December, 20), seasonAutumn},
		{models.NewDate(2026, time.December, 21), seasonWinter},
		{models.NewDate(2026, time.February, 10), seasonWinter},
		{models.NewDate(2026, time.March, 20), seasonWinter},
		{models.NewDate(2026, time.March, 21), seasonSpring},
		{models.NewDate(2026, time.May, 1), seasonSpring},
		// Jun 21 appears in both the spring and summer ranges; spring
		// wins because it is checked first.
		{models.NewDate(2026, time.June, 21), seasonSpring},
		{models.NewDate(2026, time.June, 22), seasonSummer},
		{models.NewDate(2026, time.September, 22), seasonSummer},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.season, seasonOf(tc.date), "season of %s", tc.date)
	}
}

func TestHolidayRangeInclusive(t *testing.T) {
	r := HolidayRange{
		Start: models.NewDate(2026, time.March, 19),
		End:   models.NewDate(2026, time.March, 23),
	}
	assert.True(t, r.Contains(models.NewDate(2026, time.March, 19)))
	assert.True(t, r.Contains(models.NewDate(2026, time.March, 23)))
	assert.False(t, r.Contains(models.NewDate(2026, time.March, 18)))
	assert.False(t, r.Contains(models.NewDate(2026, time.March, 24)))
}
