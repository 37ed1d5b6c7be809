package handlers

import (
	"time"

	"github.com/hamzaiqbal08/committee_fund/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RecordContributionRequest struct {
	AmountPaid  float64 `json:"amount_paid" validate:"required,gt=0"`
	ForMonth    string  `json:"for_month" validate:"required,datetime=2006-01-02"`
	DueDate     string  `json:"due_date" validate:"required,datetime=2006-01-02"`
	PaymentDate *string `json:"payment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func RecordContribution(c *fiber.Ctx) error {
	membershipID, err := uuid.Parse(c.Params("membershipId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid membership id"})
	}

	var req RecordContributionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	forMonth, _ := time.Parse("2006-01-02", req.ForMonth)
	dueDate, _ := time.Parse("2006-01-02", req.DueDate)
	var paymentDate *time.Time
	if req.PaymentDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.PaymentDate)
		paymentDate = &parsed
	}

	contribution, err := services.RecordContribution(membershipID, currentCaller(c), services.ContributionInput{
		AmountPaid:  req.AmountPaid,
		ForMonth:    forMonth,
		DueDate:     dueDate,
		PaymentDate: paymentDate,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contribution)
}

func VerifyContribution(c *fiber.Ctx) error {
	contributionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid contribution id"})
	}

	contribution, err := services.VerifyContribution(contributionID, currentCaller(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(contribution)
}

func ListContributions(c *fiber.Ctx) error {
	membershipID, err := uuid.Parse(c.Params("membershipId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid membership id"})
	}

	contributions, err := services.ListContributions(membershipID, currentCaller(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(contributions)
}
