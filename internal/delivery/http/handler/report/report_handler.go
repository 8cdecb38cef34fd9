package report

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	reportuc "github.com/sagfgh000/grocery/internal/usecase/report"
)

const defaultRangeDays = 30

type Handler struct {
	uc *reportuc.Usecase
}

func New(uc *reportuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid date"})
	}

	out, err := h.uc.Summary(c.Context(), from, to)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) Daily(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid date"})
	}

	out, err := h.uc.DailySales(c.Context(), from, to)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) Categories(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid date"})
	}

	out, err := h.uc.CategoryRevenue(c.Context(), from, to)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(fiber.Map{"items": out})
}

// parseRange reads from/to query params (YYYY-MM-DD); the default window is
// the last 30 days, with to exclusive at the end of today.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	to := now.Truncate(24 * time.Hour).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -defaultRangeDays)

	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = t.AddDate(0, 0, 1) // inclusive day
	}
	return from, to, nil
}

func mapErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, reportuc.ErrInvalidRange) {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(500).JSON(fiber.Map{"error": "internal error"})
}
