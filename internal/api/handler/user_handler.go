package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saasdash/dashboard-api/internal/core/ports"
)

// UserHandler covers admin account management.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN USER"`
}

// List returns the public identity of every account.
//
// @Summary  List all users
// @Tags     admin
// @Produce  json
// @Success  200  {array}  domain.PublicUser
// @Router   /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ChangeRole switches an account between ADMIN and USER. Tokens already in
// the wild keep their old role until they expire.
func (h *UserHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.ChangeRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes an account.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}
