package order

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/sagfgh000/grocery/internal/storage"
	checkoutuc "github.com/sagfgh000/grocery/internal/usecase/checkout"
	paymentuc "github.com/sagfgh000/grocery/internal/usecase/payment"
)

type Handler struct {
	orders   *checkoutuc.Usecase
	payments *paymentuc.Usecase
}

func New(orders *checkoutuc.Usecase, payments *paymentuc.Usecase) *Handler {
	return &Handler{orders: orders, payments: payments}
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.orders.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	out, err := h.orders.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) ListDue(c *fiber.Ctx) error {
	out, err := h.payments.ListDue(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"items": out})
}

// CreatePayment applies an incremental payment to a due order.
func (h *Handler) CreatePayment(c *fiber.Ctx) error {
	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}

	state, err := h.payments.Apply(c.Context(), c.Params("id"), req.Amount)
	if err != nil {
		if state != nil && errors.Is(err, storage.ErrWriteFailed) {
			return c.JSON(fiber.Map{
				"payment": state,
				"warning": "payment recorded in memory only: " + err.Error(),
			})
		}
		return mapErr(c, err)
	}
	return c.JSON(fiber.Map{"payment": state})
}

func mapErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, paymentuc.ErrInvalidAmount),
		errors.Is(err, checkoutuc.ErrInvalidInput):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, paymentuc.ErrExcessPayment):
		return c.Status(422).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, paymentuc.ErrOrderNotFound),
		errors.Is(err, checkoutuc.ErrOrderNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}
}
