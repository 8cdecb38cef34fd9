package product

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	cataloguc "github.com/sagfgh000/grocery/internal/usecase/catalog"
)

type Handler struct {
	uc *cataloguc.Usecase
}

func New(uc *cataloguc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req cataloguc.CreateInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}

	out, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return mapErr(c, err)
	}
	return c.Status(201).JSON(out)
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), cataloguc.ListInput{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(fiber.Map{
		"product":     out,
		"stockStatus": out.StockStatus(),
	})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var req cataloguc.UpdateInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}

	out, err := h.uc.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

func mapErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, cataloguc.ErrInvalidInput):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, cataloguc.ErrProductNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}
}
