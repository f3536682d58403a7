package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tienda/internal/middleware"
	"tienda/internal/usecase"
	"tienda/internal/validator"
)

type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/checkout", h.checkout)
}

type checkoutRequest struct {
	CustomerName     string `json:"nombre_cliente"`
	CustomerEmail    string `json:"correo_cliente"`
	CustomerPhone    string `json:"telefono_cliente"`
	Address          string `json:"direccion"`
	Region           string `json:"region"`
	Comuna           string `json:"comuna"`
	PostalCode       string `json:"codigo_postal"`
	AddressReference string `json:"referencia_direccion"`
	Notes            string `json:"notas_pedido"`
	PaymentMethod    string `json:"metodo_pago"`
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	var customerID *int64
	if id := middleware.CustomerID(c); id > 0 {
		customerID = &id
	}

	out, err := h.uc.Checkout(c.Request().Context(), middleware.Identity(c), customerID, validator.CheckoutInput{
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		Address:          req.Address,
		Region:           req.Region,
		Comuna:           req.Comuna,
		PostalCode:       req.PostalCode,
		AddressReference: req.AddressReference,
		Notes:            req.Notes,
		PaymentMethod:    req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
