package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sagfgh000/grocery/internal/config"
	"github.com/sagfgh000/grocery/internal/datastore"
	backuphandler "github.com/sagfgh000/grocery/internal/delivery/http/handler/backup"
	carthandler "github.com/sagfgh000/grocery/internal/delivery/http/handler/cart"
	checkouthandler "github.com/sagfgh000/grocery/internal/delivery/http/handler/checkout"
	orderhandler "github.com/sagfgh000/grocery/internal/delivery/http/handler/order"
	producthandler "github.com/sagfgh000/grocery/internal/delivery/http/handler/product"
	reporthandler "github.com/sagfgh000/grocery/internal/delivery/http/handler/report"
	settingshandler "github.com/sagfgh000/grocery/internal/delivery/http/handler/settings"
	backupuc "github.com/sagfgh000/grocery/internal/usecase/backup"
	cartuc "github.com/sagfgh000/grocery/internal/usecase/cart"
	cataloguc "github.com/sagfgh000/grocery/internal/usecase/catalog"
	checkoutuc "github.com/sagfgh000/grocery/internal/usecase/checkout"
	paymentuc "github.com/sagfgh000/grocery/internal/usecase/payment"
	reportuc "github.com/sagfgh000/grocery/internal/usecase/report"
	settingsuc "github.com/sagfgh000/grocery/internal/usecase/settings"
)

func RegisterRoutes(app *fiber.App, cfg config.Config, store *datastore.Store) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api := app.Group("/api")

	// Catalog wiring
	catalogUC := cataloguc.New(store)
	productH := producthandler.New(catalogUC)

	// Cart wiring: one in-progress sale per process (single operator)
	cartUC := cartuc.New(store)
	cartH := carthandler.New(cartUC)

	// Checkout + payments wiring
	checkoutUC := checkoutuc.New(store, cartUC, cfg.CashierID)
	checkoutH := checkouthandler.New(checkoutUC)
	paymentUC := paymentuc.New(store)
	orderH := orderhandler.New(checkoutUC, paymentUC)

	// Reports wiring
	reportUC := reportuc.New(store)
	reportH := reporthandler.New(reportUC)

	// Settings + backup wiring
	settingsUC := settingsuc.New(store)
	settingsH := settingshandler.New(settingsUC)
	backupUC := backupuc.New(store)
	backupH := backuphandler.New(backupUC)

	// Product routes
	api.Post("/products", productH.Create)
	api.Get("/products", productH.List)
	api.Get("/products/:id", productH.Get)
	api.Patch("/products/:id", productH.Update)

	// Cart routes
	api.Get("/cart", cartH.View)
	api.Post("/cart/items", cartH.AddItem)
	api.Put("/cart/items/:productId", cartH.SetQuantity)
	api.Delete("/cart/items/:productId", cartH.RemoveItem)
	api.Delete("/cart", cartH.Clear)

	// Checkout + order routes
	api.Post("/checkout", checkoutH.Create)
	api.Get("/orders", orderH.List)
	api.Get("/orders/due", orderH.ListDue)
	api.Get("/orders/:id", orderH.Get)
	api.Post("/orders/:id/payments", orderH.CreatePayment)

	// Report routes
	api.Get("/reports/summary", reportH.Summary)
	api.Get("/reports/daily", reportH.Daily)
	api.Get("/reports/categories", reportH.Categories)

	// Settings + data management routes
	api.Get("/settings", settingsH.Get)
	api.Patch("/settings", settingsH.Update)
	api.Get("/backup", backupH.Export)
	api.Post("/backup", backupH.Import)
	api.Delete("/data", backupH.Clear)
}
