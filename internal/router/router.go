package router

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"vowplan/internal/auth"
	"vowplan/internal/config"
	"vowplan/internal/handler"
	"vowplan/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	taskHandler *handler.TaskHandler,
	budgetHandler *handler.BudgetHandler,
	guestHandler *handler.GuestHandler,
	timelineHandler *handler.TimelineHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "x-auth-token"},
		AllowCredentials: true,
	}))

	e.Validator = validation.New()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/seed/demo", seedHandler.SeedDemo)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, _ := token.Claims.(*auth.Claims)
		return c.JSON(http.StatusOK, echo.Map{"user_id": claims.UserID, "email": claims.Email})
	})

	// Profile routes
	secured.GET("/user/profile", userHandler.GetProfile)
	secured.PUT("/user/profile", userHandler.UpdateProfile)

	// Task routes
	secured.GET("/tasks", taskHandler.List)
	secured.POST("/tasks", taskHandler.Create)
	secured.PATCH("/tasks/:id", taskHandler.Update)
	secured.DELETE("/tasks/:id", taskHandler.Delete)

	// Budget routes
	secured.GET("/budget", budgetHandler.List)
	secured.GET("/budget/summary", budgetHandler.Summary)
	secured.POST("/budget", budgetHandler.Create)
	secured.PATCH("/budget/:id", budgetHandler.Update)
	secured.DELETE("/budget/:id", budgetHandler.Delete)

	// Guest routes
	secured.GET("/guests", guestHandler.List)
	secured.GET("/guests/stats", guestHandler.Stats)
	secured.POST("/guests", guestHandler.Create)
	secured.PATCH("/guests/:id", guestHandler.Update)
	secured.DELETE("/guests/:id", guestHandler.Delete)

	// Timeline routes
	secured.GET("/timeline", timelineHandler.List)
	secured.POST("/timeline", timelineHandler.Create)
	secured.PATCH("/timeline/:id", timelineHandler.Update)
	secured.DELETE("/timeline/:id", timelineHandler.Delete)
}
