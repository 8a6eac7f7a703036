package domain

import (
	"errors"
	"time"
)

var ErrGameNotFound = errors.New("game not found")
var ErrMissingTitle = errors.New("title is required")
var ErrInvalidPrice = errors.New("price must not be negative")

// Game is a catalog entry.
type Game struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}
