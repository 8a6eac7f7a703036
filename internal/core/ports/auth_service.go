package ports

import (
	"context"

	"github.com/gamestore/game-store-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
