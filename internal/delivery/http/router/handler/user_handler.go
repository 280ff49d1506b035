// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"gamestore/config"
	"gamestore/internal/delivery/http/middleware"
	"gamestore/internal/delivery/http/response"
	"gamestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC     usecase.UserUsecase
	ratingUC   usecase.RatingUsecase
	commerceUC usecase.CommerceUsecase
	cfg        *config.Config
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, ratingUC usecase.RatingUsecase, commerceUC usecase.CommerceUsecase, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userUC:     userUC,
		ratingUC:   ratingUC,
		commerceUC: commerceUC,
		cfg:        cfg,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(user), "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	body := map[string]any{
		"token": output.Token,
		"user":  newUserView(output.User),
	}

	return response.Success(c, http.StatusOK, body, "Login successful")
}

// Me handles the request for the authenticated user's own account.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "Profile retrieved successfully")
}

// List handles the request for all user accounts.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserViews(users), "Users retrieved successfully")
}

// UpdateProfile handles the partial profile update request.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "Profile updated successfully")
}

// ForgotPassword handles the password reset request.
func (h *UserHandler) ForgotPassword(c echo.Context) error {
	var input usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot-password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.ResetBaseURL = h.resetBaseURL(c)

	if err := h.userUC.ForgotPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset email sent")
}

// ResetPassword handles the reset token redemption request.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset-password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.Token = c.Param("token")

	if err := h.userUC.ResetPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// AddComment handles the comment-and-rate request for a game.
func (h *UserHandler) AddComment(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	gameID, err := uuid.Parse(c.Param("gameId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game ID")
	}

	var input usecase.AddCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.ratingUC.AddComment(c.Request().Context(), userID, gameID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCommentView(comment), "Comment added successfully")
}

// RemoveComment handles the comment deletion request.
func (h *UserHandler) RemoveComment(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment ID")
	}

	comment, err := h.ratingUC.RemoveComment(c.Request().Context(), userID, commentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCommentView(comment), "Comment removed successfully")
}

// PurchaseGame handles the purchase request for a game.
func (h *UserHandler) PurchaseGame(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	gameID, err := uuid.Parse(c.Param("gameId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game ID")
	}

	// Card fields are optional; the commerce service falls back to the
	// stored card and enumerates anything missing.
	var payment usecase.PaymentInput
	if err := c.Bind(&payment); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	purchase, err := h.commerceUC.PurchaseGame(c.Request().Context(), userID, gameID, &payment)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newPurchaseView(purchase), "Purchase completed successfully")
}

// ListOrders handles the order history request.
func (h *UserHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	purchases, err := h.commerceUC.ListPurchases(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPurchaseViews(purchases), "Orders retrieved successfully")
}

// AddToWishlist handles the wishlist addition request.
func (h *UserHandler) AddToWishlist(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	gameID, err := uuid.Parse(c.Param("gameId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game ID")
	}

	if err := h.commerceUC.AddToWishlist(c.Request().Context(), userID, gameID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Game added to wishlist")
}

// RemoveFromWishlist handles the wishlist removal request.
func (h *UserHandler) RemoveFromWishlist(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	gameID, err := uuid.Parse(c.Param("gameId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid game ID")
	}

	if err := h.commerceUC.RemoveFromWishlist(c.Request().Context(), userID, gameID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Game removed from wishlist")
}

// resetBaseURL picks the configured public origin for reset links, falling
// back to the request host.
func (h *UserHandler) resetBaseURL(c echo.Context) string {
	if h.cfg.HTTP.ResetBaseURL != "" {
		return h.cfg.HTTP.ResetBaseURL
	}

	return c.Scheme() + "://" + c.Request().Host
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
