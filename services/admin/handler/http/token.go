package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/admin-gateway/internal/pkg/middleware"
	"github.com/piresc/admin-gateway/internal/pkg/models"
	"github.com/piresc/admin-gateway/internal/utils"
)

// Logout revokes the caller's session
func (h *AdminHandler) Logout(c echo.Context) error {
	claims, ok := middleware.ClaimsFromEcho(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	resp, err := h.adminUC.Logout(c.Request().Context(), claims.AccessToken)
	if err != nil {
		return utils.ErrorFromApp(c, err)
	}

	return c.JSON(http.StatusOK, utils.Response{
		Success: resp.Success,
		Message: resp.Message,
		Data:    resp,
	})
}

// RefreshToken exchanges a refresh token for a new access token
func (h *AdminHandler) RefreshToken(c echo.Context) error {
	var req models.RefreshTokenRequest
	if err := bindJSON(c, &req, "RefreshToken"); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.adminUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return utils.ErrorFromApp(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", resp)
}

// ValidateToken reports whether an access token is live
func (h *AdminHandler) ValidateToken(c echo.Context) error {
	var req models.ValidateTokenRequest
	if err := bindJSON(c, &req, "ValidateToken"); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.adminUC.ValidateToken(c.Request().Context(), req.AccessToken)
	if err != nil {
		return utils.ErrorFromApp(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token validated", resp)
}
