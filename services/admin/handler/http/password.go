package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/admin-gateway/internal/pkg/middleware"
	"github.com/piresc/admin-gateway/internal/pkg/models"
	"github.com/piresc/admin-gateway/internal/utils"
)

// ChangePassword rotates the password of the authenticated admin
func (h *AdminHandler) ChangePassword(c echo.Context) error {
	claims, ok := middleware.ClaimsFromEcho(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ChangePasswordRequest
	if err := bindJSON(c, &req, "ChangePassword"); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.adminUC.ChangePassword(c.Request().Context(), claims, &req)
	if err != nil {
		return utils.ErrorFromApp(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, nil)
}

// ForgotPassword starts password recovery
func (h *AdminHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := bindJSON(c, &req, "ForgotPassword"); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.adminUC.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return utils.ErrorFromApp(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// ResetPassword completes password recovery
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := bindJSON(c, &req, "ResetPassword"); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.adminUC.ResetPassword(c.Request().Context(), &req)
	if err != nil {
		return utils.ErrorFromApp(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, nil)
}
