package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	cartuc "github.com/sagfgh000/grocery/internal/usecase/cart"
	cataloguc "github.com/sagfgh000/grocery/internal/usecase/catalog"
)

type Handler struct {
	uc *cartuc.Usecase
}

func New(uc *cartuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) View(c *fiber.Ctx) error {
	return c.JSON(h.uc.View())
}

func (h *Handler) AddItem(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}

	if err := h.uc.AddItem(c.Context(), req.ProductID); err != nil {
		return mapErr(c, err)
	}
	return c.Status(201).JSON(h.uc.View())
}

// SetQuantity takes the raw operator input ("3", "250g", "1kg") and lets
// the quantity-editor policy normalize it.
func (h *Handler) SetQuantity(c *fiber.Ctx) error {
	var req struct {
		Quantity string `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}

	if err := h.uc.EnterQuantity(c.Context(), c.Params("productId"), req.Quantity); err != nil {
		return mapErr(c, err)
	}
	return c.JSON(h.uc.View())
}

func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	h.uc.RemoveItem(c.Params("productId"))
	return c.JSON(h.uc.View())
}

func (h *Handler) Clear(c *fiber.Ctx) error {
	h.uc.Clear()
	return c.JSON(h.uc.View())
}

func mapErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, cartuc.ErrInsufficientStock),
		errors.Is(err, cartuc.ErrInvalidQuantity),
		errors.Is(err, cartuc.ErrQuantityRequired):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, cataloguc.ErrProductNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}
}
