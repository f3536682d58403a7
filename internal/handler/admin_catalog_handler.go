package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tienda/internal/usecase"
)

// Admin catalog management: products, categories and offers. Routes run
// behind AuthJWT + StaffGuard.
type AdminCatalogHandler struct {
	products   *usecase.ProductUsecase
	categories *usecase.CategoryUsecase
	offers     *usecase.OfferUsecase
}

func NewAdminCatalogHandler(
	products *usecase.ProductUsecase,
	categories *usecase.CategoryUsecase,
	offers *usecase.OfferUsecase,
) *AdminCatalogHandler {
	return &AdminCatalogHandler{
		products:   products,
		categories: categories,
		offers:     offers,
	}
}

func (h *AdminCatalogHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/products", h.createProduct)
	g.PUT("/products/:id", h.updateProduct)
	g.POST("/products/actions", h.productAction)

	g.POST("/categories", h.createCategory)
	g.PUT("/categories/:id", h.updateCategory)
	g.DELETE("/categories/:id", h.deleteCategory)

	g.GET("/products/:id/offers", h.listOffers)
	g.POST("/offers", h.createOffer)
	g.POST("/offers/actions", h.offerAction)
	g.DELETE("/offers/:id", h.deleteOffer)
}

type productRequest struct {
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio_unitario"`
	Unit        string          `json:"unidad_medida"`
	Stock       int64           `json:"stock_disponible"`
	CategoryID  int64           `json:"categoria_id"`
	Image       string          `json:"imagen"`
	IsActive    bool            `json:"activo"`
}

func (r productRequest) toInput() usecase.AdminProductInput {
	return usecase.AdminProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Unit:        r.Unit,
		Stock:       r.Stock,
		CategoryID:  r.CategoryID,
		Image:       r.Image,
		IsActive:    r.IsActive,
	}
}

func (h *AdminCatalogHandler) createProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.products.AdminCreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminCatalogHandler) updateProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.products.AdminUpdateProduct(c.Request().Context(), id, req.toInput()); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type idsActionRequest struct {
	Action string  `json:"accion"`
	IDs    []int64 `json:"ids"`
}

type affectedResponse struct {
	Affected int64 `json:"affected"`
}

func (h *AdminCatalogHandler) productAction(c echo.Context) error {
	var req idsActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	var active bool
	switch req.Action {
	case "activar":
		active = true
	case "desactivar":
		active = false
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "acción inválida"})
	}

	affected, err := h.products.AdminSetProductsActive(c.Request().Context(), req.IDs, active)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, affectedResponse{Affected: affected})
}

type categoryRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	IsActive    bool   `json:"activa"`
}

func (h *AdminCatalogHandler) createCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	cat, err := h.categories.Create(c.Request().Context(), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *AdminCatalogHandler) updateCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.categories.Update(c.Request().Context(), id, usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminCatalogHandler) deleteCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type offerRequest struct {
	ProductID  int64           `json:"producto_id"`
	OfferPrice decimal.Decimal `json:"precio_oferta"`
	StartsAt   time.Time       `json:"fecha_inicio"`
	EndsAt     time.Time       `json:"fecha_fin"`
	IsActive   bool            `json:"activa"`
}

func (h *AdminCatalogHandler) listOffers(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	offers, err := h.offers.ListByProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, offers)
}

func (h *AdminCatalogHandler) createOffer(c echo.Context) error {
	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	o, err := h.offers.Create(c.Request().Context(), usecase.OfferInput{
		ProductID:  req.ProductID,
		OfferPrice: req.OfferPrice,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *AdminCatalogHandler) offerAction(c echo.Context) error {
	var req idsActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	var active bool
	switch req.Action {
	case "activar":
		active = true
	case "desactivar":
		active = false
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "acción inválida"})
	}

	affected, err := h.offers.SetActive(c.Request().Context(), req.IDs, active)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, affectedResponse{Affected: affected})
}

func (h *AdminCatalogHandler) deleteOffer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.offers.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
