package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/admin-gateway/internal/pkg/logger"
	"github.com/piresc/admin-gateway/internal/pkg/middleware"
	"github.com/piresc/admin-gateway/internal/pkg/models"
	"github.com/piresc/admin-gateway/internal/utils"
	"github.com/piresc/admin-gateway/services/admin"
)

// AdminHandler handles HTTP requests for admin authentication
type AdminHandler struct {
	adminUC admin.AdminUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUC admin.AdminUC) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

func bindJSON(c echo.Context, dst interface{}, endpoint string) error {
	if err := c.Bind(dst); err != nil {
		logger.Warn("Invalid request payload",
			logger.ErrorField(err),
			logger.String("endpoint", endpoint),
		)
		return err
	}
	return nil
}

// Signup handles admin registration requests
func (h *AdminHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := bindJSON(c, &req, "Signup"); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.adminUC.Signup(c.Request().Context(), &req)
	if err != nil {
		return utils.ErrorFromApp(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Admin registered successfully", resp)
}

// Login handles credential login requests
func (h *AdminHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bindJSON(c, &req, "Login"); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.adminUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.ErrorFromApp(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Profile returns the authenticated admin
func (h *AdminHandler) Profile(c echo.Context) error {
	claims, ok := middleware.ClaimsFromEcho(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	summary, err := h.adminUC.GetProfile(c.Request().Context(), claims)
	if err != nil {
		return utils.ErrorFromApp(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", summary)
}
