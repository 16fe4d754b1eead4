package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-api/internal/core/ports"
)

// CatalogHandler serves products and categories.
type CatalogHandler struct {
	svc ports.CatalogService
}

func NewCatalogHandler(svc ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListProducts godoc
// @Summary      List products
// @Description  Case-insensitive search over name and description. data is true on the last page.
// @Tags         products
// @Produce      json
// @Param        search  query     string  false  "Substring of name or description"
// @Param        limit   query     int     false  "Page size (default 10, max 100)"
// @Param        page    query     int     false  "1-based page number"
// @Success      200     {object}  productListResponse
// @Failure      400     {object}  errorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var q listProductsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	page, err := h.svc.ListProducts(c.Request().Context(), ports.ListProductsInput{
		Search: q.Search,
		Limit:  q.Limit,
		Page:   q.Page,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productListResponse{
		Data:     page.LastPage,
		Products: toProductResponses(page.Products),
	})
}

// GetProduct godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  productEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	p, err := h.svc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productEnvelope{Data: toProductResponse(p)})
}

// CreateProduct godoc
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product"
// @Success      201   {object}  productEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p, err := h.svc.CreateProduct(c.Request().Context(), toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, productEnvelope{Data: toProductResponse(p)})
}

// UpdateProduct godoc
// @Summary      Partially update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Product ID"
// @Param        body  body      productPatchRequest  true  "Fields to change"
// @Success      200   {object}  productEnvelope
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/products/{id} [patch]
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req productPatchRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p, err := h.svc.UpdateProduct(c.Request().Context(), c.Param("id"), toProductUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productEnvelope{Data: toProductResponse(p)})
}

// DeleteProduct godoc
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.svc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully."})
}

// ListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  categoryListResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	cats, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryListResponse{Data: toCategoryResponses(cats)})
}
