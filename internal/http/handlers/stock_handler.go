package handlers

import (
	applog "balcao/internal/log"
	"balcao/internal/services"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	Stock *services.StockService
}

// GET /estoque
func (h *StockHandler) Page(c *fiber.Ctx) error {
	st, err := h.Stock.Status()
	if err != nil {
		applog.Error(c, "stock.status.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Não foi possível carregar o estoque."})
	}
	return render(c, "estoque", fiber.Map{"Qtd": st.Quantity, "Vendas": st.SalesToday})
}

// POST /estoque — one decrement plus one sale record; selling at zero
// stock is a silent no-op.
func (h *StockHandler) Sell(c *fiber.Ctx) error {
	res, err := h.Stock.Sell()
	if err != nil {
		applog.Error(c, "stock.sell.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Não foi possível registrar a venda."})
	}
	if res.Sold {
		applog.Audit(c, "stock.sell", map[string]any{"quantity": res.Quantity})
	} else {
		applog.Info(c, "stock.sell.noop", map[string]any{"quantity": res.Quantity})
	}
	return h.Page(c)
}
