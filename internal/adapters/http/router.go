// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"sharenote/internal/adapters/http/auth"
	"sharenote/internal/adapters/http/middleware"
	"sharenote/internal/adapters/http/notes"
	"sharenote/internal/ports/api"
	svc "sharenote/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authService api.AuthUseCase,
	notesService api.NotesUseCase,
	sharingService api.SharingUseCase,
	tokenService svc.TokenService,
) {
	authHandler := auth.NewHandler(authService)
	notesHandler := notes.NewHandler(notesService, sharingService)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Публичный доступ к заметке по токену, без аутентификации.
	apiV1.Get("/notes/public/:token", notesHandler.PublicNote)

	// Маршруты заметок (требуют авторизации).
	notesRoutes := apiV1.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(tokenService))
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Get("/search", notesHandler.SearchNotes)
	notesRoutes.Get("/activity", notesHandler.ListActivity)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)
	notesRoutes.Post("/:note_id/share", notesHandler.ShareNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
