package ports

import (
	"context"

	"github.com/gamestore/game-store-api/internal/core/domain"
)

// GameRepository defines persistence operations for catalog entries.
type GameRepository interface {
	Insert(ctx context.Context, game *domain.Game) (*domain.Game, error)
	FindAll(ctx context.Context) ([]domain.Game, error)
	FindByID(ctx context.Context, id string) (*domain.Game, error)
}
