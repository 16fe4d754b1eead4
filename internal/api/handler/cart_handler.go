package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-api/internal/core/domain"
	"github.com/99minutos/shop-api/internal/core/ports"
)

// CartHandler serves the caller's own shopping cart.
type CartHandler struct {
	svc ports.CartService
}

func NewCartHandler(svc ports.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// GetCart godoc
// @Summary      Get the caller's cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	view, err := h.svc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// SaveCart godoc
// @Summary      Replace the caller's cart
// @Description  userId must be the caller's own id. The stored items are replaced wholesale.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        userId  path      string           true  "Owner user ID"
// @Param        body    body      saveCartRequest  true  "Cart items"
// @Success      200     {object}  cartResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Router       /api/cart/{userId} [put]
func (h *CartHandler) SaveCart(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	// Ownership is checked before the body is read.
	if c.Param("userId") != userID {
		return domain.ErrForbidden
	}

	var req saveCartRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.svc.SaveCart(c.Request().Context(), userID, toCartItemInputs(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}
