package handler

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/piresc/admin-gateway/internal/pkg/constants"
	"github.com/piresc/admin-gateway/internal/pkg/guard"
	"github.com/piresc/admin-gateway/internal/pkg/middleware"
	"github.com/piresc/admin-gateway/internal/pkg/models"
	"github.com/piresc/admin-gateway/services/admin/handler/http"
)

// Handler wires the admin HTTP handlers to their routes
type Handler struct {
	adminHandler *http.AdminHandler
	verifier     guard.ClaimsVerifier
	redisClient  *redis.Client
	cfg          *models.Config
}

// NewHandler creates the admin route set. redisClient may be nil, which
// disables rate limiting.
func NewHandler(
	adminHandler *http.AdminHandler,
	verifier guard.ClaimsVerifier,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		adminHandler: adminHandler,
		verifier:     verifier,
		redisClient:  redisClient,
		cfg:          cfg,
	}
}

func (h *Handler) rateLimited(scope string) []echo.MiddlewareFunc {
	if !h.cfg.RateLimit.Enabled || h.redisClient == nil {
		return nil
	}
	return []echo.MiddlewareFunc{
		middleware.IPRateLimiter(scope, h.cfg.RateLimit.Limit, h.cfg.RateLimit.Period, h.redisClient),
	}
}

// RegisterRoutes registers the /admin routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	adminOnly := middleware.Guard(h.verifier, middleware.RequireRoles(constants.RoleAdmin))

	g := e.Group("/admin")

	// Public routes
	g.POST("/signup", h.adminHandler.Signup)
	g.POST("/login", h.adminHandler.Login, h.rateLimited("login")...)
	g.POST("/forgot-password", h.adminHandler.ForgotPassword, h.rateLimited("forgot-password")...)
	g.POST("/reset-password", h.adminHandler.ResetPassword)
	g.POST("/refresh-token", h.adminHandler.RefreshToken)
	g.POST("/validate-token", h.adminHandler.ValidateToken)

	// Authenticated routes
	g.POST("/change-password", h.adminHandler.ChangePassword, adminOnly)
	g.POST("/logout", h.adminHandler.Logout, adminOnly)
	g.GET("/profile", h.adminHandler.Profile, adminOnly)
}
