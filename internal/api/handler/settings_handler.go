package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saasdash/dashboard-api/internal/core/ports"
)

// SettingsHandler lets any authenticated user update their own account.
type SettingsHandler struct {
	users ports.UserService
}

func NewSettingsHandler(users ports.UserService) *SettingsHandler {
	return &SettingsHandler{users: users}
}

type settingsRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// Update changes the caller's email and/or password. Supplying neither is a
// validation error; the service rejects it before touching the store.
//
// @Summary  Update own settings
// @Tags     user
// @Accept   json
// @Produce  json
// @Param    body  body      settingsRequest  true  "New email and/or password"
// @Success  200   {object}  domain.PublicUser
// @Failure  400   {object}  map[string]string
// @Router   /user/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.UpdateSettings(c.Request().Context(), identity.UserID, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
