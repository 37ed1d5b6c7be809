package handlers

import (
	"time"

	"github.com/hamzaiqbal08/committee_fund/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommitteeRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Description    string  `json:"description"`
	MonthlyAmount  float64 `json:"monthly_amount" validate:"required,gt=0"`
	DurationMonths int     `json:"duration_months" validate:"required"`
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
}

func (r CommitteeRequest) toInput() services.CommitteeInput {
	startDate, _ := time.Parse("2006-01-02", r.StartDate)
	return services.CommitteeInput{
		Name:           r.Name,
		Description:    r.Description,
		MonthlyAmount:  r.MonthlyAmount,
		DurationMonths: r.DurationMonths,
		StartDate:      startDate,
	}
}

func CreateCommittee(c *fiber.Ctx) error {
	var req CommitteeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	committee, err := services.CreateCommittee(currentCaller(c), req.toInput())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(committee)
}

func UpdateCommittee(c *fiber.Ctx) error {
	committeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid committee id"})
	}

	var req CommitteeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	committee, err := services.UpdateCommittee(committeeID, currentCaller(c), req.toInput())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(committee)
}

func DeleteCommittee(c *fiber.Ctx) error {
	committeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid committee id"})
	}

	if err := services.DeleteCommittee(committeeID, currentCaller(c)); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetCommittee(c *fiber.Ctx) error {
	committeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid committee id"})
	}

	detail, err := services.GetCommittee(committeeID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(detail)
}

func ListCommittees(c *fiber.Ctx) error {
	details, err := services.ListCommittees()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(details)
}
