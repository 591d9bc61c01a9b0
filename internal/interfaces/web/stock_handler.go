package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/application/usecase"
)

// StockHandler pages CRUD des relevés de stock.
// Les formulaires ont besoin des listes de produits et de zones pour leurs menus déroulants.
type StockHandler struct {
	uc        *usecase.StockUseCase
	productUC *usecase.ProductUseCase
	zoneUC    *usecase.ZoneUseCase
}

// NewStockHandler construit le handler.
func NewStockHandler(uc *usecase.StockUseCase, productUC *usecase.ProductUseCase, zoneUC *usecase.ZoneUseCase) *StockHandler {
	return &StockHandler{uc: uc, productUC: productUC, zoneUC: zoneUC}
}

// formData charge les listes des menus déroulants puis y fusionne extra.
func (h *StockHandler) formData(c *fiber.Ctx, extra fiber.Map) fiber.Map {
	data := fiber.Map{}
	if products, err := h.productUC.List(c.Context()); err == nil {
		data["Products"] = products
	}
	if zones, err := h.zoneUC.List(c.Context()); err == nil {
		data["Zones"] = zones
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// List affiche tous les relevés, les plus récents d'abord.
func (h *StockHandler) List(c *fiber.Ctx) error {
	stocks, err := h.uc.List(c.Context())
	if err != nil {
		return render(c, "stocks/list", fiber.Map{"Error": "Erreur lors du chargement"})
	}
	return render(c, "stocks/list", fiber.Map{"Stocks": stocks})
}

// ByProduct affiche les relevés d'un produit ; produit inconnu -> retour à la liste.
func (h *StockHandler) ByProduct(c *fiber.Ctx) error {
	product, err := h.productUC.GetByID(c.Context(), c.Params("id"))
	if err != nil || product == nil {
		return c.Redirect("/stocks", fiber.StatusSeeOther)
	}
	stocks, err := h.uc.ListByProduct(c.Context(), product.ID)
	if err != nil {
		return render(c, "stocks/by_product", fiber.Map{"Product": product, "Error": "Erreur lors du chargement"})
	}
	return render(c, "stocks/by_product", fiber.Map{"Product": product, "Stocks": stocks})
}

// ByZone affiche les relevés d'une zone ; zone inconnue -> retour à la liste.
func (h *StockHandler) ByZone(c *fiber.Ctx) error {
	zone, err := h.zoneUC.GetByID(c.Context(), c.Params("id"))
	if err != nil || zone == nil {
		return c.Redirect("/stocks", fiber.StatusSeeOther)
	}
	stocks, err := h.uc.ListByZone(c.Context(), zone.ID)
	if err != nil {
		return render(c, "stocks/by_zone", fiber.Map{"Zone": zone, "Error": "Erreur lors du chargement"})
	}
	return render(c, "stocks/by_zone", fiber.Map{"Zone": zone, "Stocks": stocks})
}

// AddForm affiche le formulaire d'ajout avec les menus déroulants produit/zone.
func (h *StockHandler) AddForm(c *fiber.Ctx) error {
	return render(c, "stocks/form", h.formData(c, nil))
}

// Add valide puis insère un nouveau relevé — jamais de fusion avec un relevé existant.
func (h *StockHandler) Add(c *fiber.Ctx) error {
	var in dto.StockForm
	if err := c.BodyParser(&in); err != nil {
		return render(c, "stocks/form", h.formData(c, fiber.Map{"Error": "Formulaire invalide"}))
	}
	if errs := in.Validate(); len(errs) > 0 {
		return render(c, "stocks/form", h.formData(c, fiber.Map{"Error": errs[0], "Form": in}))
	}
	user := CurrentUser(c)
	if _, err := h.uc.Create(c.Context(), in, &user.ID); err != nil {
		return render(c, "stocks/form", h.formData(c, fiber.Map{"Error": "Erreur lors de l'enregistrement", "Form": in}))
	}
	return c.Redirect("/stocks", fiber.StatusSeeOther)
}

// EditForm affiche le formulaire pré-rempli ; id inconnu -> retour à la liste.
func (h *StockHandler) EditForm(c *fiber.Ctx) error {
	stock, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil || stock == nil {
		return c.Redirect("/stocks", fiber.StatusSeeOther)
	}
	return render(c, "stocks/edit", h.formData(c, fiber.Map{"Stock": stock}))
}

// Edit écrase les champs du relevé puis revient à la liste.
func (h *StockHandler) Edit(c *fiber.Ctx) error {
	var in dto.StockForm
	if err := c.BodyParser(&in); err != nil {
		return c.Redirect("/stocks", fiber.StatusSeeOther)
	}
	id := c.Params("id")
	if errs := in.Validate(); len(errs) > 0 {
		stock, err := h.uc.GetByID(c.Context(), id)
		if err != nil || stock == nil {
			return c.Redirect("/stocks", fiber.StatusSeeOther)
		}
		return render(c, "stocks/edit", h.formData(c, fiber.Map{"Error": errs[0], "Stock": stock, "Form": in}))
	}
	if _, err := h.uc.Update(c.Context(), id, in); err != nil {
		return c.Redirect("/stocks", fiber.StatusSeeOther)
	}
	return c.Redirect("/stocks", fiber.StatusSeeOther)
}

// Delete supprime puis revient à la liste ; id inconnu -> simple redirection.
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	_ = h.uc.Delete(c.Context(), c.Params("id"))
	return c.Redirect("/stocks", fiber.StatusSeeOther)
}
