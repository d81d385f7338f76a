package database

import (
	"context"
	"encoding/json"

	"github.com/RayanAlrsheed/GraduationProject/models"
)

// The restaurant menu and both ledgers are stored as one JSONB
// document per account. Handlers load the aggregate, mutate it in
// memory, and save it back explicitly; nothing writes on mutation.

func loadDoc(ctx context.Context, table, userID string, out interface{}) error {
	var raw []byte
	err := GetDB().QueryRow(ctx, `SELECT doc FROM `+table+` WHERE user_id = $1`, userID).Scan(&raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func saveDoc(ctx context.Context, table, userID string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = GetDB().Exec(ctx, `
		INSERT INTO `+table+` (user_id, doc) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc
	`, userID, raw)
	return err
}

// LoadRestaurant fetches the account's menu document.
func LoadRestaurant(ctx context.Context, userID string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := loadDoc(ctx, "restaurants", userID, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// SaveRestaurant persists the account's menu document.
func SaveRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	return saveDoc(ctx, "restaurants", restaurant.UserID, restaurant)
}

// LoadOrderLedger fetches the account's order ledger.
func LoadOrderLedger(ctx context.Context, userID string) (*models.OrderLedger, error) {
	var ledger models.OrderLedger
	if err := loadDoc(ctx, "order_ledgers", userID, &ledger); err != nil {
		return nil, err
	}
	return &ledger, nil
}

// SaveOrderLedger persists the account's order ledger.
func SaveOrderLedger(ctx context.Context, ledger *models.OrderLedger) error {
	return saveDoc(ctx, "order_ledgers", ledger.UserID, ledger)
}

// LoadPredictionLedger fetches the account's forecast-origin ledger.
func LoadPredictionLedger(ctx context.Context, userID string) (*models.OrderLedger, error) {
	var ledger models.OrderLedger
	if err := loadDoc(ctx, "prediction_ledgers", userID, &ledger); err != nil {
		return nil, err
	}
	return &ledger, nil
}

// SavePredictionLedger persists the account's forecast-origin ledger.
func SavePredictionLedger(ctx context.Context, ledger *models.OrderLedger) error {
	return saveDoc(ctx, "prediction_ledgers", ledger.UserID, ledger)
}

// CreateAccountDocuments seeds the three per-account documents at
// registration. Ledgers are created once here and never recreated.
func CreateAccountDocuments(ctx context.Context, userID, location string) error {
	if err := SaveRestaurant(ctx, &models.Restaurant{UserID: userID, Location: location, Menu: []models.MenuItem{}}); err != nil {
		return err
	}
	if err := SaveOrderLedger(ctx, &models.OrderLedger{UserID: userID, Orders: []models.Order{}}); err != nil {
		return err
	}
	return SavePredictionLedger(ctx, &models.OrderLedger{UserID: userID, Orders: []models.Order{}})
}
