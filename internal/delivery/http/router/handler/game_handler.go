package handler

import (
	"net/http"

	"gamestore/internal/delivery/http/middleware"
	"gamestore/internal/delivery/http/response"
	"gamestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GameHandler holds dependencies for catalog handlers.
type GameHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewGameHandler is the constructor for GameHandler, injected by Fx.
func NewGameHandler(catalogUC usecase.CatalogUsecase) *GameHandler {
	return &GameHandler{catalogUC: catalogUC}
}

// Create handles the game creation request. Company role required.
func (h *GameHandler) Create(c echo.Context) error {
	companyID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input usecase.CreateGameInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid game input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	game, err := h.catalogUC.CreateGame(c.Request().Context(), companyID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newGameView(game), "Game created successfully")
}

// Get handles a single-game read. Public; bumps the view counter.
func (h *GameHandler) Get(c echo.Context) error {
	gameID, err := uuid.Parse(c.Param("gameId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game ID")
	}

	game, err := h.catalogUC.GetGame(c.Request().Context(), gameID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newGameView(game), "Game retrieved successfully")
}

// List handles the full catalog read. Public.
func (h *GameHandler) List(c echo.Context) error {
	games, err := h.catalogUC.ListGames(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newGameViews(games), "Games retrieved successfully")
}

// Update handles the partial game patch request. Owner company only.
func (h *GameHandler) Update(c echo.Context) error {
	companyID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	gameID, err := uuid.Parse(c.Param("gameId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game ID")
	}

	var input usecase.UpdateGameInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid game input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	game, err := h.catalogUC.UpdateGame(c.Request().Context(), companyID, gameID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newGameView(game), "Game updated successfully")
}

// Delete handles the game deletion request. Owner company only.
func (h *GameHandler) Delete(c echo.Context) error {
	companyID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	gameID, err := uuid.Parse(c.Param("gameId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game ID")
	}

	if err := h.catalogUC.DeleteGame(c.Request().Context(), companyID, gameID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Game deleted successfully")
}
