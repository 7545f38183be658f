package api

import (
	"github.com/gofiber/fiber/v3"
)

func SetupRoutes(app *fiber.App, h *Handler) {
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "indenter-backend",
		})
	})

	api := app.Group("/api")
	api.Post("/detect-language", h.DetectLanguage)
	api.Post("/indent", h.IndentCode)
}
