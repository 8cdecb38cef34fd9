package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	settingsuc "github.com/sagfgh000/grocery/internal/usecase/settings"
)

type Handler struct {
	uc *settingsuc.Usecase
}

func New(uc *settingsuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(out)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var req settingsuc.UpdateInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}

	out, err := h.uc.Update(c.Context(), req)
	if err != nil {
		if errors.Is(err, settingsuc.ErrInvalidInput) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(out)
}
