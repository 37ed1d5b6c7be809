package routes

import (
	"github.com/hamzaiqbal08/committee_fund/handlers"
	"github.com/hamzaiqbal08/committee_fund/middleware"
	"github.com/gofiber/fiber/v2"
)

func CommitteeRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	committees := api.Group("/committees", middleware.Protected())
	committees.Get("", handlers.ListCommittees)
	committees.Get("/:id", handlers.GetCommittee)
	committees.Post("", middleware.OrganizerRequired(), handlers.CreateCommittee)
	committees.Put("/:id", middleware.OrganizerRequired(), handlers.UpdateCommittee)
	committees.Delete("/:id", middleware.OrganizerRequired(), handlers.DeleteCommittee)
}
