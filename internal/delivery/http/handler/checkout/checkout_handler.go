package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sagfgh000/grocery/internal/storage"
	checkoutuc "github.com/sagfgh000/grocery/internal/usecase/checkout"
)

type Handler struct {
	uc *checkoutuc.Usecase
}

func New(uc *checkoutuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req checkoutuc.FinalizeInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}

	out, err := h.uc.Finalize(c.Context(), req)
	if err != nil {
		// the order stands even when the durable mirror write failed
		if out != nil && errors.Is(err, storage.ErrWriteFailed) {
			return c.Status(201).JSON(fiber.Map{
				"order":   out,
				"warning": "order recorded in memory only: " + err.Error(),
			})
		}
		return mapErr(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"order": out})
}

func mapErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, checkoutuc.ErrEmptyCart),
		errors.Is(err, checkoutuc.ErrInvalidInput):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, checkoutuc.ErrMissingCustomer):
		return c.Status(422).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, checkoutuc.ErrInsufficientStock):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}
}
