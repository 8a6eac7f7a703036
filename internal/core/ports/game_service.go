package ports

import (
	"context"

	"github.com/gamestore/game-store-api/internal/core/domain"
)

// CreateGameInput carries all data needed to add a catalog entry.
type CreateGameInput struct {
	Title       string
	Description string
	Price       float64
}

// GameService defines use-case operations over the catalog.
type GameService interface {
	List(ctx context.Context) ([]domain.Game, error)
	GetByID(ctx context.Context, id string) (*domain.Game, error)
	Create(ctx context.Context, input CreateGameInput) (*domain.Game, error)
}
