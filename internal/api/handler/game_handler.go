package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gamestore/game-store-api/internal/api/metrics"
	"github.com/gamestore/game-store-api/internal/core/domain"
	"github.com/gamestore/game-store-api/internal/core/ports"
)

// GameHandler handles HTTP requests for catalog operations.
type GameHandler struct {
	service ports.GameService
}

func NewGameHandler(service ports.GameService) *GameHandler {
	return &GameHandler{service: service}
}

func toGameResponse(g domain.Game) gameResponse {
	return gameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Price:       g.Price,
		CreatedAt:   g.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// List handles GET /games.
//
// @Summary      List all games
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   gameResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /games [get]
func (h *GameHandler) List(c echo.Context) error {
	games, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]gameResponse, 0, len(games))
	for _, g := range games {
		resp = append(resp, toGameResponse(g))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /games/:id.
//
// @Summary      Get a game by id
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Game id"
// @Success      200  {object}  gameResponse
// @Failure      404  {object}  map[string]string
// @Router       /games/{id} [get]
func (h *GameHandler) Get(c echo.Context) error {
	game, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toGameResponse(*game))
}

// Create handles POST /games.
//
// @Summary      Add a game to the catalog
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGameRequest  true  "Game details"
// @Success      201   {object}  gameResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /games [post]
func (h *GameHandler) Create(c echo.Context) error {
	var req createGameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	game, err := h.service.Create(c.Request().Context(), ports.CreateGameInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingTitle) || errors.Is(err, domain.ErrInvalidPrice) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.GamesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toGameResponse(*game))
}
