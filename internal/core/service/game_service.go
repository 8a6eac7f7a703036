package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gamestore/game-store-api/internal/core/domain"
	"github.com/gamestore/game-store-api/internal/core/ports"
)

// CatalogCache abstracts the catalog read cache (Redis). The boolean result
// reports a cache hit; errors are treated as misses by the service.
type CatalogCache interface {
	GetList(ctx context.Context) ([]domain.Game, bool, error)
	SetList(ctx context.Context, games []domain.Game) error
	GetGame(ctx context.Context, id string) (*domain.Game, bool, error)
	SetGame(ctx context.Context, game *domain.Game) error
	Invalidate(ctx context.Context) error
}

// GameService implements catalog use cases over the game store, with a
// read-through cache in front of list and get.
type GameService struct {
	games ports.GameRepository
	cache CatalogCache
	log   zerolog.Logger
}

// NewGameService returns a GameService. cache may be nil, in which case all
// reads go straight to the repository.
func NewGameService(games ports.GameRepository, cache CatalogCache, log zerolog.Logger) *GameService {
	return &GameService{games: games, cache: cache, log: log}
}

// List returns all catalog entries in store order.
func (s *GameService) List(ctx context.Context) ([]domain.Game, error) {
	if s.cache != nil {
		games, hit, err := s.cache.GetList(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("catalog cache read failed")
		} else if hit {
			return games, nil
		}
	}

	games, err := s.games.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, games); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return games, nil
}

// GetByID returns the matching entry or domain.ErrGameNotFound.
func (s *GameService) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	if s.cache != nil {
		game, hit, err := s.cache.GetGame(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("game_id", id).Msg("catalog cache read failed")
		} else if hit {
			return game, nil
		}
	}

	game, err := s.games.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetGame(ctx, game); err != nil {
			s.log.Warn().Err(err).Str("game_id", id).Msg("catalog cache write failed")
		}
	}
	return game, nil
}

// Create validates and persists a new catalog entry.
func (s *GameService) Create(ctx context.Context, input ports.CreateGameInput) (*domain.Game, error) {
	if input.Title == "" {
		return nil, domain.ErrMissingTitle
	}
	if input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	game := &domain.Game{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.games.Insert(ctx, game)
	if err != nil {
		s.log.Error().Err(err).Str("title", input.Title).Msg("failed to create game")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
		}
	}

	s.log.Info().Str("game_id", created.ID).Str("title", created.Title).Msg("game created")
	return created, nil
}
