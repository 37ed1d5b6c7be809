package routes

import (
	"github.com/hamzaiqbal08/committee_fund/handlers"
	"github.com/hamzaiqbal08/committee_fund/middleware"
	"github.com/gofiber/fiber/v2"
)

func MembershipRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	members := api.Group("/committees/:committeeId/members", middleware.Protected())
	members.Get("", handlers.ListMembers)
	members.Post("", middleware.OrganizerRequired(), handlers.AddMember)
	members.Delete("/:membershipId", middleware.OrganizerRequired(), handlers.RemoveMember)
	members.Post("/:membershipId/leave", handlers.LeaveCommittee)
}
