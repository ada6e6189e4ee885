package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saasdash/dashboard-api/internal/core/ports"
)

type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type productRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
}

func (r *productRequest) input() ports.ProductInput {
	return ports.ProductInput{Name: r.Name, Description: r.Description, Price: r.Price}
}

// --- Admin view: every product ---

// AdminList returns all products, newest first.
//
// @Summary  List all products
// @Tags     admin
// @Produce  json
// @Success  200  {array}  domain.Product
// @Router   /admin/products [get]
func (h *ProductHandler) AdminList(c echo.Context) error {
	products, err := h.products.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// AdminGet returns a single product by id.
func (h *ProductHandler) AdminGet(c echo.Context) error {
	product, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// AdminCreate creates a product owned by the calling admin.
func (h *ProductHandler) AdminCreate(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Create(c.Request().Context(), identity.UserID, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// AdminUpdate replaces the writable fields of any product.
func (h *ProductHandler) AdminUpdate(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// AdminDelete removes any product.
func (h *ProductHandler) AdminDelete(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}

// --- Owner-scoped view: the caller's products only ---

// List returns the caller's products, newest first.
//
// @Summary  List own products
// @Tags     user
// @Produce  json
// @Success  200  {array}  domain.Product
// @Router   /user/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	products, err := h.products.ListOwned(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create creates a product owned by the caller.
func (h *ProductHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Create(c.Request().Context(), identity.UserID, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update modifies one of the caller's own products.
func (h *ProductHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.UpdateOwned(c.Request().Context(), identity.UserID, c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes one of the caller's own products.
func (h *ProductHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.products.DeleteOwned(c.Request().Context(), identity.UserID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}
