package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gamestore/game-store-api/internal/core/domain"
	"github.com/gamestore/game-store-api/internal/core/ports"
	"github.com/gamestore/game-store-api/pkg/logger"
)

type stubGameRepo struct {
	games    []domain.Game
	findAlls int
}

func (r *stubGameRepo) Insert(_ context.Context, game *domain.Game) (*domain.Game, error) {
	created := *game
	created.ID = fmt.Sprintf("game-%d", len(r.games)+1)
	r.games = append(r.games, created)
	return &created, nil
}

func (r *stubGameRepo) FindAll(_ context.Context) ([]domain.Game, error) {
	r.findAlls++
	return append([]domain.Game(nil), r.games...), nil
}

func (r *stubGameRepo) FindByID(_ context.Context, id string) (*domain.Game, error) {
	for _, g := range r.games {
		if g.ID == id {
			game := g
			return &game, nil
		}
	}
	return nil, domain.ErrGameNotFound
}

type stubCache struct {
	list        []domain.Game
	hasList     bool
	games       map[string]*domain.Game
	invalidated int
}

func newStubCache() *stubCache {
	return &stubCache{games: make(map[string]*domain.Game)}
}

func (c *stubCache) GetList(_ context.Context) ([]domain.Game, bool, error) {
	return c.list, c.hasList, nil
}

func (c *stubCache) SetList(_ context.Context, games []domain.Game) error {
	c.list = games
	c.hasList = true
	return nil
}

func (c *stubCache) GetGame(_ context.Context, id string) (*domain.Game, bool, error) {
	g, ok := c.games[id]
	return g, ok, nil
}

func (c *stubCache) SetGame(_ context.Context, game *domain.Game) error {
	c.games[game.ID] = game
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.hasList = false
	c.list = nil
	c.invalidated++
	return nil
}

func TestGameService_Create_NegativePrice(t *testing.T) {
	svc := NewGameService(&stubGameRepo{}, nil, logger.Init(logger.Options{Level: "error"}))

	_, err := svc.Create(context.Background(), ports.CreateGameInput{Title: "Doom", Price: -1})
	if !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestGameService_Create_EmptyTitle(t *testing.T) {
	repo := &stubGameRepo{}
	svc := NewGameService(repo, nil, logger.Init(logger.Options{Level: "error"}))

	_, err := svc.Create(context.Background(), ports.CreateGameInput{Title: "", Price: 9.99})
	if !errors.Is(err, domain.ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got %v", err)
	}
	if len(repo.games) != 0 {
		t.Fatalf("untitled game must not be stored, got %d", len(repo.games))
	}
}

func TestGameService_Create_AssignsID(t *testing.T) {
	repo := &stubGameRepo{}
	cache := newStubCache()
	cache.hasList = true
	svc := NewGameService(repo, cache, logger.Init(logger.Options{Level: "error"}))

	game, err := svc.Create(context.Background(), ports.CreateGameInput{
		Title:       "Hollow Knight",
		Description: "Metroidvania",
		Price:       14.99,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if game.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation, got %d", cache.invalidated)
	}
}

func TestGameService_Create_ZeroPriceAllowed(t *testing.T) {
	svc := NewGameService(&stubGameRepo{}, nil, logger.Init(logger.Options{Level: "error"}))

	if _, err := svc.Create(context.Background(), ports.CreateGameInput{Title: "Free Game", Price: 0}); err != nil {
		t.Fatalf("zero price should be accepted: %v", err)
	}
}

func TestGameService_List_CachesResult(t *testing.T) {
	repo := &stubGameRepo{}
	cache := newStubCache()
	svc := NewGameService(repo, cache, logger.Init(logger.Options{Level: "error"}))

	_, _ = svc.Create(context.Background(), ports.CreateGameInput{Title: "Celeste", Price: 19.99})

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 game, got %d", len(first))
	}

	// Second list must come from the cache, not the repository.
	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected 1 game, got %d", len(second))
	}
	if repo.findAlls != 1 {
		t.Fatalf("expected 1 repository read, got %d", repo.findAlls)
	}
}

func TestGameService_GetByID_NotFound(t *testing.T) {
	svc := NewGameService(&stubGameRepo{}, nil, logger.Init(logger.Options{Level: "error"}))

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestGameService_GetByID_CacheHit(t *testing.T) {
	repo := &stubGameRepo{}
	cache := newStubCache()
	svc := NewGameService(repo, cache, logger.Init(logger.Options{Level: "error"}))

	created, err := svc.Create(context.Background(), ports.CreateGameInput{Title: "Hades", Price: 24.99})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// First read populates the cache, second read is served from it.
	if _, err := svc.GetByID(context.Background(), created.ID); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	repo.games = nil
	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("cached get failed: %v", err)
	}
	if got.Title != "Hades" {
		t.Fatalf("unexpected game: %+v", got)
	}
}
