package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saasdash/dashboard-api/internal/core/ports"
)

type InvoiceHandler struct {
	invoices ports.InvoiceService
}

func NewInvoiceHandler(invoices ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// adminInvoiceRequest lets an admin attach the invoice to any user.
type adminInvoiceRequest struct {
	UserID      string  `json:"userId" validate:"required"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Description string  `json:"description" validate:"required"`
}

// userInvoiceRequest is always pinned to the caller.
type userInvoiceRequest struct {
	Amount      float64 `json:"amount" validate:"gt=0"`
	Description string  `json:"description" validate:"required"`
}

// --- Admin view ---

// AdminList returns all invoices, newest first.
//
// @Summary  List all invoices
// @Tags     admin
// @Produce  json
// @Success  200  {array}  domain.Invoice
// @Router   /admin/invoices [get]
func (h *InvoiceHandler) AdminList(c echo.Context) error {
	invoices, err := h.invoices.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// AdminListByUser filters invoices by their user.
func (h *InvoiceHandler) AdminListByUser(c echo.Context) error {
	invoices, err := h.invoices.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// AdminCreate creates an invoice for an arbitrary user.
func (h *InvoiceHandler) AdminCreate(c echo.Context) error {
	var req adminInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	invoice, err := h.invoices.Create(c.Request().Context(), ports.InvoiceInput{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, invoice)
}

// AdminUpdate replaces the writable fields of any invoice.
func (h *InvoiceHandler) AdminUpdate(c echo.Context) error {
	var req adminInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	invoice, err := h.invoices.Update(c.Request().Context(), c.Param("id"), ports.InvoiceInput{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// AdminDelete removes any invoice.
func (h *InvoiceHandler) AdminDelete(c echo.Context) error {
	if err := h.invoices.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "invoice deleted"})
}

// --- Owner-scoped view ---

// List returns the caller's invoices, newest first.
//
// @Summary  List own invoices
// @Tags     user
// @Produce  json
// @Success  200  {array}  domain.Invoice
// @Router   /user/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	invoices, err := h.invoices.ListOwned(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Create creates an invoice attached to the caller.
func (h *InvoiceHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req userInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	invoice, err := h.invoices.CreateOwned(c.Request().Context(), identity.UserID, req.Amount, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, invoice)
}

// Update modifies one of the caller's own invoices.
func (h *InvoiceHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req userInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	invoice, err := h.invoices.UpdateOwned(c.Request().Context(), identity.UserID, c.Param("id"), req.Amount, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// Delete removes one of the caller's own invoices.
func (h *InvoiceHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.invoices.DeleteOwned(c.Request().Context(), identity.UserID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "invoice deleted"})
}
