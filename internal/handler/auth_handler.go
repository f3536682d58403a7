package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tienda/internal/middleware"
	"tienda/internal/usecase"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterPublicRoutes mounts register/login; RegisterPrivateRoutes mounts
// the profile endpoints behind AuthJWT.
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/register", h.register)
	g.POST("/login", h.login)
}

func (h *AuthHandler) RegisterPrivateRoutes(g *echo.Group) {
	g.GET("/clientes/me", h.me)
	g.PUT("/perfil/actualizar", h.updateMe)
}

// RegisterTokenRoutes mounts verify-token behind AuthJWT; reaching the
// handler at all means the token was accepted.
func (h *AuthHandler) RegisterTokenRoutes(g *echo.Group) {
	g.GET("/verify-token", h.verifyToken)
}

type registerRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Phone    string `json:"telefono"`
	Password string `json:"password"`
}

func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	customer, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, customer)
}

type loginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"password"`
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password, middleware.GuestIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) verifyToken(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Token válido y usuario activo.",
		"cliente_id": middleware.CustomerID(c),
	})
}

func (h *AuthHandler) me(c echo.Context) error {
	customer, err := h.uc.Profile(c.Request().Context(), middleware.CustomerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

type updateProfileRequest struct {
	Name  string `json:"nombre"`
	Email string `json:"correo"`
	Phone string `json:"telefono"`
}

func (h *AuthHandler) updateMe(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	customer, err := h.uc.UpdateProfile(c.Request().Context(), middleware.CustomerID(c), usecase.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}
