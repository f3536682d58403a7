package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tienda/internal/middleware"
	"tienda/internal/usecase"
)

type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Routes assume CartIdentity middleware already ran on the group.
func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/cart", h.view)
	g.POST("/cart", h.add)
	g.PUT("/cart/:id", h.setQuantity)
	g.DELETE("/cart/clear", h.clear)
	g.DELETE("/cart/:id", h.remove)
}

type cartAddRequest struct {
	ProductID int64 `json:"producto_id"`
	Quantity  int64 `json:"cantidad"`
}

type cartQuantityRequest struct {
	Quantity int64 `json:"cantidad"`
}

func (h *CartHandler) view(c echo.Context) error {
	out, err := h.uc.View(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) add(c echo.Context) error {
	var req cartAddRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	out, err := h.uc.Add(c.Request().Context(), middleware.Identity(c), req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) setQuantity(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req cartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SetQuantity(c.Request().Context(), middleware.Identity(c), id, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Remove(c.Request().Context(), middleware.Identity(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context(), middleware.Identity(c)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
