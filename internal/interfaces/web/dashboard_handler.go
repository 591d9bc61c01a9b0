package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hounsa/agrisuivi/internal/application/analytics"
)

// DashboardHandler page du tableau de bord.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Show assemble et rend le tableau de bord complet.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	overview, err := h.uc.GetOverview(c.Context())
	if err != nil {
		return render(c, "dashboard", fiber.Map{"Error": "Erreur lors du chargement du tableau de bord"})
	}
	return render(c, "dashboard", fiber.Map{"Overview": overview})
}
