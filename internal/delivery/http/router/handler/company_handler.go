package handler

import (
	"net/http"

	"gamestore/config"
	"gamestore/internal/delivery/http/middleware"
	"gamestore/internal/delivery/http/response"
	"gamestore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CompanyHandler holds dependencies for company-related handlers.
type CompanyHandler struct {
	companyUC usecase.CompanyUsecase
	cfg       *config.Config
}

// NewCompanyHandler is the constructor for CompanyHandler, injected by Fx.
func NewCompanyHandler(companyUC usecase.CompanyUsecase, cfg *config.Config) *CompanyHandler {
	return &CompanyHandler{
		companyUC: companyUC,
		cfg:       cfg,
	}
}

// Register handles the company registration request.
func (h *CompanyHandler) Register(c echo.Context) error {
	var input usecase.RegisterCompanyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	company, err := h.companyUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCompanyView(company), "Company registered successfully")
}

// Login handles the company login request.
func (h *CompanyHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.companyUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	body := map[string]any{
		"token":   output.Token,
		"company": newCompanyView(output.Company),
	}

	return response.Success(c, http.StatusOK, body, "Login successful")
}

// Me handles the request for the authenticated company's own account.
func (h *CompanyHandler) Me(c echo.Context) error {
	companyID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	company, err := h.companyUC.GetCompany(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCompanyView(company), "Profile retrieved successfully")
}

// List handles the request for all company accounts.
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.companyUC.ListCompanies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCompanyViews(companies), "Companies retrieved successfully")
}

// UpdateProfile handles the partial company profile update request.
func (h *CompanyHandler) UpdateProfile(c echo.Context) error {
	companyID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input usecase.UpdateCompanyProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	company, err := h.companyUC.UpdateProfile(c.Request().Context(), companyID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCompanyView(company), "Profile updated successfully")
}

// ForgotPassword handles the company password reset request.
func (h *CompanyHandler) ForgotPassword(c echo.Context) error {
	var input usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot-password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.ResetBaseURL = h.resetBaseURL(c)

	if err := h.companyUC.ForgotPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset email sent")
}

// ResetPassword handles the company reset token redemption request.
func (h *CompanyHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset-password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.Token = c.Param("token")

	if err := h.companyUC.ResetPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

func (h *CompanyHandler) resetBaseURL(c echo.Context) string {
	if h.cfg.HTTP.ResetBaseURL != "" {
		return h.cfg.HTTP.ResetBaseURL
	}

	return c.Scheme() + "://" + c.Request().Host
}
