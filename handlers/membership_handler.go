package handlers

import (
	"github.com/hamzaiqbal08/committee_fund/database"
	"github.com/hamzaiqbal08/committee_fund/models"
	"github.com/hamzaiqbal08/committee_fund/notifications"
	"github.com/hamzaiqbal08/committee_fund/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func notifyMemberAdded(membershipID uuid.UUID) {
	var membership models.Membership
	err := database.DB.Preload("Member").Preload("Committee").
		First(&membership, "id = ?", membershipID).Error
	if err != nil {
		return
	}
	notifications.SendMemberAdded(&membership.Member, membership.Committee.Name)
}

type AddMemberRequest struct {
	MemberID string `json:"member_id" validate:"required,uuid"`
}

func AddMember(c *fiber.Ctx) error {
	committeeID, err := uuid.Parse(c.Params("committeeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid committee id"})
	}

	var req AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	memberID, _ := uuid.Parse(req.MemberID)

	membership, err := services.AddMember(committeeID, currentCaller(c), memberID)
	if err != nil {
		return serviceError(c, err)
	}

	go notifyMemberAdded(membership.ID)

	return c.Status(fiber.StatusCreated).JSON(membership)
}

func RemoveMember(c *fiber.Ctx) error {
	committeeID, err := uuid.Parse(c.Params("committeeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid committee id"})
	}
	membershipID, err := uuid.Parse(c.Params("membershipId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid membership id"})
	}

	if err := services.RemoveMember(committeeID, currentCaller(c), membershipID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func LeaveCommittee(c *fiber.Ctx) error {
	committeeID, err := uuid.Parse(c.Params("committeeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid committee id"})
	}
	membershipID, err := uuid.Parse(c.Params("membershipId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid membership id"})
	}

	if err := services.LeaveCommittee(committeeID, currentCaller(c), membershipID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"status": "left"})
}

func ListMembers(c *fiber.Ctx) error {
	committeeID, err := uuid.Parse(c.Params("committeeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid committee id"})
	}

	members, err := services.ListMembers(committeeID, currentCaller(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(members)
}
