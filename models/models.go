package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateSettingsRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
}

// --- Core Models ---

// User represents an account holder: a restaurant owner or an admin.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// Charity is a directory entry maintained by admins and shown to
// restaurants in the same city.
type Charity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	LocationURL string `json:"location_url"`
}

// --- API Request Structs ---

type MenuItemRequest struct {
	ItemID string `json:"itemId"`
	Name   string `json:"name"`
}

type UpdateMenuItemRequest struct {
	NewItemID string `json:"newItemId"`
	Name      string `json:"name"`
}

type IngredientRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type SaleRequest struct {
	Date     string  `json:"date"`
	ItemID   string  `json:"itemId"`
	Quantity float64 `json:"quantity"`
}

type RemoveSaleRequest struct {
	Date   string `json:"date"`
	ItemID string `json:"itemId"`
}

type CharityRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	LocationURL string `json:"locationUrl"`
}
