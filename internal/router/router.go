package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/siaga-go-api/internal/config"
	"github.com/noah-isme/siaga-go-api/internal/handler"
	"github.com/noah-isme/siaga-go-api/internal/middleware"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	ModuleHandler     *handler.ModuleHandler
	CompletionHandler *handler.CompletionHandler
	QuizHandler       *handler.QuizHandler
	AttemptHandler    *handler.AttemptHandler
	DrillHandler      *handler.DrillHandler
	AlertHandler      *handler.AlertHandler
	ContactHandler    *handler.ContactHandler
	PredictionHandler *handler.PredictionHandler
	ProgressHandler   *handler.ProgressHandler
	JWTMiddleware     fiber.Handler
	PredictLimiter    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleTeacher)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	if deps.AuthHandler != nil {
		auth := api.Group("/auth")
		deps.AuthHandler.Register(auth)
		deps.AuthHandler.RegisterProtected(auth.Group("", jwtMiddleware))
	}

	if deps.UserHandler != nil {
		deps.UserHandler.Register(api.Group("/users", jwtMiddleware, adminOnly))
	}

	if deps.ModuleHandler != nil {
		deps.ModuleHandler.Register(api.Group("/modules", jwtMiddleware))
	}

	if deps.CompletionHandler != nil {
		deps.CompletionHandler.Register(api.Group("/video-completion", jwtMiddleware))
	}

	if deps.QuizHandler != nil {
		deps.QuizHandler.Register(api.Group("/quizzes", jwtMiddleware))
		deps.QuizHandler.RegisterTeacher(api.Group("/teacher/quizzes", jwtMiddleware, staffOnly))
	}

	if deps.AttemptHandler != nil {
		deps.AttemptHandler.Register(api.Group("/quiz-attempts", jwtMiddleware))
	}

	if deps.DrillHandler != nil {
		deps.DrillHandler.Register(api.Group("/drills", jwtMiddleware))
	}

	if deps.AlertHandler != nil {
		alerts := api.Group("/alerts", jwtMiddleware)
		deps.AlertHandler.Register(alerts)
		deps.AlertHandler.RegisterStaff(alerts.Group("", staffOnly))
		deps.AlertHandler.RegisterAdmin(alerts.Group("", adminOnly))
	}

	if deps.ContactHandler != nil {
		contacts := api.Group("/emergency-contacts", jwtMiddleware)
		deps.ContactHandler.Register(contacts)
		deps.ContactHandler.RegisterAdmin(contacts.Group("", adminOnly))
	}

	if deps.PredictionHandler != nil {
		chain := []fiber.Handler{jwtMiddleware}
		if deps.PredictLimiter != nil {
			chain = append(chain, deps.PredictLimiter)
		}
		deps.PredictionHandler.Register(api.Group("", chain...))
	}

	if deps.ProgressHandler != nil {
		deps.ProgressHandler.Register(api.Group("", jwtMiddleware))
		deps.ProgressHandler.RegisterStaff(api.Group("/teacher", jwtMiddleware, staffOnly))
		deps.ProgressHandler.RegisterAdmin(api.Group("/admin", jwtMiddleware, adminOnly))
	}
}
