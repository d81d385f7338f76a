// Package forecast builds next-day per-item sales estimates from an
// account's order ledger. Each run is a pure function of the ledger
// contents at call time: it reads the two anchor days, builds one
// feature vector per eligible item, asks the external predictor for an
// estimate, and returns a single synthetic order dated one day after
// the most recent real order. Persistence is the caller's job.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/RayanAlrsheed/GraduationProject/models"
)

// Feature vector layout. The width and index assignments are dictated
// by the pretrained model and must not change without retraining.
const (
	featureWidth = 18

	featWeekend    = 0 // 1 when the target day is Thu-Sat
	featHoliday    = 1 // 1 when the target day falls in a holiday range
	featLastWeek   = 2 // quantity sold 7 days before the target day
	featYesterday  = 3 // quantity sold 1 day before the target day
	itemSlotBase   = 4 // one-hot catalog position, 10 slots
	itemSlotCount  = 10
	seasonSlotBase = 14 // one-hot season: autumn, spring, summer, winter
)

var (
	// ErrNoSalesData means the ledger holds no orders at all.
	ErrNoSalesData = errors.New("forecast: ledger has no sales data")
	// ErrMissingAnchor means the last-week anchor order is absent.
	ErrMissingAnchor = errors.New("forecast: no order for last-week anchor day")
	// ErrNoEligibleItems means no item had sales on both anchor days.
	ErrNoEligibleItems = errors.New("forecast: no items eligible for prediction")
)

// Predictor is the pretrained external model, treated as an opaque
// function from a feature vector to a scalar estimate.
type Predictor interface {
	Predict(ctx context.Context, features []float64) (float64, error)
}

// HolidayRange is one inclusive holiday period. The set of ranges is
// loaded once at startup and never mutated.
type HolidayRange struct {
	Start models.Date
	End   models.Date
}

// Contains reports whether day falls inside the range, inclusive.
func (r HolidayRange) Contains(day models.Date) bool {
	return !day.Before(r.Start.Time) && !day.After(r.End.Time)
}

// Engine produces forecast orders. Holidays and the predictor are
// injected at construction and shared by every run.
type Engine struct {
	Holidays  []HolidayRange
	Predictor Predictor
}

// NewEngine builds a forecast engine.
func NewEngine(holidays []HolidayRange, predictor Predictor) *Engine {
	return &Engine{Holidays: holidays, Predictor: predictor}
}

// Run forecasts the day after the ledger's most recent order. An item
// is eligible only when it has a sale on both anchor days: the latest
// order and the order exactly six days earlier. Items whose catalog
// position exceeds the one-hot capacity cannot be encoded and are
// skipped. Any predictor error aborts the whole run; on success the
// returned order, dated one day past the latest real order, holds one
// sale per eligible item with the estimate rounded to two decimals.
func (e *Engine) Run(ctx context.Context, ledger *models.OrderLedger, restaurant *models.Restaurant) (models.Order, error) {
	latest, ok := ledger.LatestOrder()
	if !ok {
		return models.Order{}, ErrNoSalesData
	}
	lastWeek, ok := ledger.GetOrder(latest.Date.AddDays(-6))
	if !ok {
		return models.Order{}, ErrMissingAnchor
	}
	target := latest.Date.AddDays(1)

	features := make([]float64, featureWidth)
	if wd := target.Weekday(); wd >= time.Thursday && wd <= time.Saturday {
		features[featWeekend] = 1
	}
	for _, r := range e.Holidays {
		if r.Contains(target) {
			features[featHoliday] = 1
			break
		}
	}
	features[seasonSlotBase+seasonOf(target)] = 1

	forecasted := models.Order{Date: target}
	for position, item := range restaurant.Menu {
		if position >= itemSlotCount {
			break
		}
		yesterday, ok := latest.Sale(item.ID)
		if !ok {
			continue
		}
		weekAgo, ok := lastWeek.Sale(item.ID)
		if !ok {
			continue
		}

		features[featLastWeek] = weekAgo.Quantity
		features[featYesterday] = yesterday.Quantity
		features[itemSlotBase+position] = 1

		estimate, err := e.Predictor.Predict(ctx, features)

		features[itemSlotBase+position] = 0

		if err != nil {
			return models.Order{}, fmt.Errorf("forecast: predicting %s: %w", item.ID, err)
		}
		forecasted.AddSale(item.ID, math.Round(estimate*100)/100)
	}

	if len(forecasted.Sales) == 0 {
		return models.Order{}, ErrNoEligibleItems
	}
	return forecasted, nil
}

// Season one-hot offsets, in the order the model was trained with.
const (
	seasonAutumn = 0 // Sep 23 - Dec 20
	seasonSpring = 1 // Mar 21 - Jun 21
	seasonSummer = 2 // Jun 21 - Sep 22
	seasonWinter = 3 // everything else
)

// seasonOf resolves the target day's season. The ranges are checked in
// training order, so the Jun 21 overlap resolves to spring.
func seasonOf(day models.Date) int {
	m, d := day.Month(), day.Day()
	switch {
	case (m == time.September && d >= 23) || m == time.October || m == time.November || (m == time.December && d <= 20):
		return seasonAutumn
	case (m == time.March && d >= 21) || m == time.April || m == time.May || (m == time.June && d <= 21):
		return seasonSpring
	case m == time.June || m == time.July || m == time.August || (m == time.September && d <= 22):
		return seasonSummer
	default:
		return seasonWinter
	}
}
