package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"tasker/internal/config"
	"tasker/internal/handler"
	"tasker/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	authService service.AuthService,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Shared request-rate limit across all routes.
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
			Burst: cfg.RequestsPerMinute,
		},
	)))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// Secured routes: echo-jwt verifies signature and expiry, CurrentUser
	// checks the denylist and resolves the subject to a user record.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(cfg.JWTSecret),
		SigningMethod: cfg.JWTAlgorithm,
		TokenLookup:   "header:" + echo.HeaderAuthorization + ":Bearer ",
	}), handler.CurrentUser(authService))

	secured.POST("/logout", authHandler.Logout)
	secured.POST("/tasks", taskHandler.CreateTask)
	secured.GET("/tasks", taskHandler.ListTasks)
	secured.GET("/tasks/:id", taskHandler.GetTask)
	secured.PUT("/tasks/:id", taskHandler.EditTask)
	secured.DELETE("/tasks/:id", taskHandler.DeleteTask)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
