package handlers

import (
	"github.com/hamzaiqbal08/committee_fund/database"
	"github.com/hamzaiqbal08/committee_fund/models"
	"github.com/hamzaiqbal08/committee_fund/notifications"
	"github.com/hamzaiqbal08/committee_fund/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreatePayoutRequest struct {
	MembershipID string `json:"membership_id" validate:"required,uuid"`
}

func CreatePayout(c *fiber.Ctx) error {
	committeeID, err := uuid.Parse(c.Params("committeeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid committee id"})
	}

	var req CreatePayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	membershipID, _ := uuid.Parse(req.MembershipID)

	payout, err := services.CreatePayout(committeeID, currentCaller(c), membershipID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payout)
}

func ConfirmPayout(c *fiber.Ctx) error {
	payoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payout id"})
	}

	payout, err := services.ConfirmPayout(payoutID, currentCaller(c))
	if err != nil {
		return serviceError(c, err)
	}

	go notifyPayoutConfirmed(payout)

	return c.JSON(payout)
}

func notifyPayoutConfirmed(payout *models.Payout) {
	var membership models.Membership
	err := database.DB.Preload("Member").Preload("Committee").
		First(&membership, "id = ?", payout.MembershipID).Error
	if err != nil {
		return
	}
	notifications.SendPayoutConfirmed(&membership.Member, membership.Committee.Name, payout.TotalAmount)
}

func ListPayouts(c *fiber.Ctx) error {
	committeeID, err := uuid.Parse(c.Params("committeeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid committee id"})
	}

	payouts, err := services.ListPayouts(committeeID, currentCaller(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(payouts)
}

func ListMyPayouts(c *fiber.Ctx) error {
	payouts, err := services.ListMyPayouts(currentCaller(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(payouts)
}
