package routes

import (
	"github.com/hamzaiqbal08/committee_fund/handlers"
	"github.com/hamzaiqbal08/committee_fund/middleware"
	"github.com/gofiber/fiber/v2"
)

func ContributionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	contributions := api.Group("/memberships/:membershipId/contributions", middleware.Protected())
	contributions.Get("", handlers.ListContributions)
	contributions.Post("", handlers.RecordContribution)

	api.Patch("/contributions/:id/verify", middleware.Protected(), middleware.OrganizerRequired(), handlers.VerifyContribution)
}
