package handlers

import (
	"errors"

	applog "balcao/internal/log"
	"balcao/internal/repos"
	"balcao/internal/services"
	"balcao/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Stock    *services.StockService
	Report   *services.ReportService
	Messages *repos.MessageRepo
}

// GET /admin
func (h *AdminHandler) Panel(c *fiber.Ctx) error {
	st, err := h.Stock.Status()
	if err != nil {
		applog.Error(c, "admin.panel.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Não foi possível carregar o painel."})
	}
	vendas, err := h.Report.Daily()
	if err != nil {
		applog.Error(c, "admin.panel.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Não foi possível carregar o painel."})
	}
	nmsgs, err := h.Messages.Count()
	if err != nil {
		applog.Error(c, "admin.panel.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Não foi possível carregar o painel."})
	}
	return render(c, "admin", fiber.Map{"Qtd": st.Quantity, "Mensagens": nmsgs, "Vendas": vendas})
}

// POST /admin — form key picks the action: reset_estoque (+valor_inicial)
// or apagar_mensagens.
func (h *AdminHandler) Action(c *fiber.Ctx) error {
	switch {
	case c.FormValue("reset_estoque") != "":
		qty, ok := validate.Qty(c.FormValue("valor_inicial"))
		if !ok {
			return c.Status(fiber.StatusBadRequest).SendString("valor inválido")
		}
		if err := h.Stock.Reset(qty); err != nil {
			if errors.Is(err, services.ErrNegativeStock) {
				applog.Security(c, "admin.stock.reset.negative", map[string]any{"qty": qty})
				return c.Status(fiber.StatusBadRequest).SendString("estoque negativo não permitido")
			}
			applog.Error(c, "admin.stock.reset.fail", err, map[string]any{"qty": qty})
			return c.Status(fiber.StatusInternalServerError).SendString("não foi possível redefinir o estoque")
		}
		applog.Audit(c, "admin.stock.reset", map[string]any{"qty": qty})

	case c.FormValue("apagar_mensagens") != "":
		if err := h.Messages.DeleteAll(); err != nil {
			applog.Error(c, "admin.messages.clear.fail", err, nil)
			return c.Status(fiber.StatusInternalServerError).SendString("não foi possível apagar as mensagens")
		}
		applog.Audit(c, "admin.messages.clear", nil)
	}

	return c.Redirect("/admin")
}
