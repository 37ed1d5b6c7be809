package routes

import (
	"github.com/hamzaiqbal08/committee_fund/handlers"
	"github.com/hamzaiqbal08/committee_fund/middleware"
	"github.com/gofiber/fiber/v2"
)

func PayoutRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payouts := api.Group("/committees/:committeeId/payouts", middleware.Protected(), middleware.OrganizerRequired())
	payouts.Get("", handlers.ListPayouts)
	payouts.Post("", handlers.CreatePayout)

	api.Get("/payouts/me", middleware.Protected(), handlers.ListMyPayouts)
	api.Patch("/payouts/:id/confirm", middleware.Protected(), middleware.OrganizerRequired(), handlers.ConfirmPayout)
}
