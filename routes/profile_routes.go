package routes

import (
	"github.com/hamzaiqbal08/committee_fund/handlers"
	"github.com/hamzaiqbal08/committee_fund/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
	profile.Put("/change-password", handlers.ChangePassword)
}
