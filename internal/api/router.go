package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/diary/docs"
	"github.com/99minutos/diary/internal/api/handler"
	"github.com/99minutos/diary/internal/api/middleware"
	"github.com/99minutos/diary/internal/core/ports"
	"github.com/99minutos/diary/internal/infrastructure/http/handlers"
)

// Dependencies is everything the router needs to serve requests.
type Dependencies struct {
	Log      zerolog.Logger
	Entries  ports.EntryService
	Auth     ports.AuthService
	Sessions ports.SessionProvider
	Themes   ports.ThemeService
	// Health lists the dependencies checked by /health/ready, by name.
	Health       map[string]handlers.Pinger
	CookieSecure bool
	// Registry receives the request metrics. The default registry is used when nil.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "diary",
		Registerer: registerer,
	}))

	// --- Operational routes (no session, no device cookie) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Health)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Application routes ---
	app := e.Group("", middleware.Session(), middleware.Device(deps.CookieSecure))

	views := handler.NewViewHandler(deps.Sessions)
	app.GET("/", views.Home)
	app.GET("/login", views.Login)
	app.GET("/signup", views.Signup)

	auth := handler.NewAuthHandler(deps.Auth, deps.CookieSecure)
	app.POST("/auth/signup", auth.Signup)
	app.POST("/auth/login", auth.Login)
	app.GET("/auth/callback", auth.Callback)
	app.POST("/auth/logout", auth.Logout)

	entries := handler.NewEntryHandler(deps.Entries)
	app.GET("/dashboard", entries.Dashboard)
	app.GET("/create", entries.CreateForm)
	app.POST("/create", entries.Create)
	app.POST("/preview", entries.Preview)
	app.GET("/diary/:id", entries.Detail)
	app.GET("/diary/:id/delete", entries.DeleteConfirm)
	app.POST("/diary/:id/delete", entries.Delete)
	app.GET("/edit/:id", entries.EditForm)
	app.POST("/edit/:id", entries.Edit)

	themes := handler.NewThemeHandler(deps.Themes)
	app.GET("/theme", themes.Get)
	app.POST("/theme/toggle", themes.Toggle)

	return e
}
