package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/application/usecase"
)

// ZoneHandler pages CRUD des zones.
type ZoneHandler struct {
	uc *usecase.ZoneUseCase
}

// NewZoneHandler construit le handler.
func NewZoneHandler(uc *usecase.ZoneUseCase) *ZoneHandler {
	return &ZoneHandler{uc: uc}
}

// List affiche toutes les zones.
func (h *ZoneHandler) List(c *fiber.Ctx) error {
	zones, err := h.uc.List(c.Context())
	if err != nil {
		return render(c, "zones/list", fiber.Map{"Error": "Erreur lors du chargement"})
	}
	return render(c, "zones/list", fiber.Map{"Zones": zones})
}

// AddForm affiche le formulaire d'ajout vide.
func (h *ZoneHandler) AddForm(c *fiber.Ctx) error {
	return render(c, "zones/form", nil)
}

// Add valide puis insère.
func (h *ZoneHandler) Add(c *fiber.Ctx) error {
	var in dto.ZoneForm
	if err := c.BodyParser(&in); err != nil {
		return render(c, "zones/form", fiber.Map{"Error": "Formulaire invalide"})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return render(c, "zones/form", fiber.Map{"Error": errs[0], "Form": in})
	}
	if _, err := h.uc.Create(c.Context(), in); err != nil {
		return render(c, "zones/form", fiber.Map{"Error": "Erreur lors de l'enregistrement", "Form": in})
	}
	return c.Redirect("/zones", fiber.StatusSeeOther)
}

// EditForm affiche le formulaire pré-rempli ; id inconnu -> retour à la liste.
func (h *ZoneHandler) EditForm(c *fiber.Ctx) error {
	zone, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil || zone == nil {
		return c.Redirect("/zones", fiber.StatusSeeOther)
	}
	return render(c, "zones/edit", fiber.Map{"Zone": zone})
}

// Edit écrase les champs de la zone puis revient à la liste.
func (h *ZoneHandler) Edit(c *fiber.Ctx) error {
	var in dto.ZoneForm
	if err := c.BodyParser(&in); err != nil {
		return c.Redirect("/zones", fiber.StatusSeeOther)
	}
	id := c.Params("id")
	if errs := in.Validate(); len(errs) > 0 {
		zone, err := h.uc.GetByID(c.Context(), id)
		if err != nil || zone == nil {
			return c.Redirect("/zones", fiber.StatusSeeOther)
		}
		return render(c, "zones/edit", fiber.Map{"Error": errs[0], "Zone": zone, "Form": in})
	}
	if _, err := h.uc.Update(c.Context(), id, in); err != nil {
		return c.Redirect("/zones", fiber.StatusSeeOther)
	}
	return c.Redirect("/zones", fiber.StatusSeeOther)
}

// Delete supprime puis revient à la liste ; id inconnu -> simple redirection.
func (h *ZoneHandler) Delete(c *fiber.Ctx) error {
	_ = h.uc.Delete(c.Context(), c.Params("id"))
	return c.Redirect("/zones", fiber.StatusSeeOther)
}
