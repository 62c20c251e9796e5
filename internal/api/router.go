package api

import (
	"onyx/docs"
	"onyx/internal/api/handlers"
	"onyx/pkg/auth"
	"onyx/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Expense  *handlers.ExpenseHandler
	Goal     *handlers.GoalHandler
	Settings *handlers.SettingsHandler
	Document *handlers.DocumentHandler
	Advisor  *handlers.AdvisorHandler
	Report   *handlers.ReportHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing docs registers the swagger spec through its init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	userAuth := app.Group("/user/auth")
	userAuth.Post("/register", h.Auth.Register)
	userAuth.Post("/login", h.Auth.Login)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	expenses := protected.Group("/expenses")
	expenses.Post("", h.Expense.Create)
	expenses.Get("", h.Expense.List)
	expenses.Get("/export", h.Expense.Export)

	protected.Get("/reports/summary", h.Report.Summary)

	goals := protected.Group("/goals")
	goals.Post("", h.Goal.Create)
	goals.Get("", h.Goal.List)
	goals.Post("/:id/fund", h.Goal.Fund)

	settings := protected.Group("/settings")
	settings.Get("", h.Settings.Get)
	settings.Put("/budget", h.Settings.UpdateBudget)
	settings.Put("/currency", h.Settings.UpdateCurrency)

	documents := protected.Group("/documents")
	documents.Post("", h.Document.Upload)
	documents.Get("", h.Document.List)
	documents.Get("/review", h.Document.CurrentReview)
	documents.Post("/review/approve", h.Document.Approve)
	documents.Post("/review/cancel", h.Document.Cancel)
	documents.Post("/:id/review", h.Document.StartReview)

	protected.Post("/advisor/chat", h.Advisor.Chat)

	profile := protected.Group("/profile")
	profile.Put("/password", h.Auth.ChangePassword)
	profile.Put("/username", h.Auth.ChangeUsername)

	return app
}
