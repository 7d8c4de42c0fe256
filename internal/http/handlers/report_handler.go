package handlers

import (
	applog "balcao/internal/log"
	"balcao/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	Report *services.ReportService
}

// GET /relatorio
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	vendas, err := h.Report.Daily()
	if err != nil {
		applog.Error(c, "report.daily.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Não foi possível carregar o relatório."})
	}
	return render(c, "relatorio", fiber.Map{"Vendas": vendas})
}
