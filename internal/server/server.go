package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"tienda/internal/config"
)

// New builds the echo instance with the shared middleware; routes are
// mounted separately so tests can spin up a bare instance.
func New(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowCredentials: true,
	}))

	return e
}

func Start(e *echo.Echo, port string) error {
	return e.Start(":" + port)
}
