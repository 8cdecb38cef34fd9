package backup

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	backupuc "github.com/sagfgh000/grocery/internal/usecase/backup"
)

type Handler struct {
	uc *backupuc.Usecase
}

func New(uc *backupuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Export(c *fiber.Ctx) error {
	out, err := h.uc.Export(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}
	c.Set("Content-Disposition", `attachment; filename="grocerease_backup.json"`)
	return c.JSON(out)
}

// Import overwrites all current data with the uploaded backup.
func (h *Handler) Import(c *fiber.Ctx) error {
	if err := h.uc.Import(c.Context(), c.Body()); err != nil {
		if errors.Is(err, backupuc.ErrInvalidBackup) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *Handler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"ok": true})
}
