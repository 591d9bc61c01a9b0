package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/application/usecase"
)

// PriceHandler pages CRUD des relevés de prix. Même forme que StockHandler.
type PriceHandler struct {
	uc        *usecase.PriceUseCase
	productUC *usecase.ProductUseCase
	zoneUC    *usecase.ZoneUseCase
}

// NewPriceHandler construit le handler.
func NewPriceHandler(uc *usecase.PriceUseCase, productUC *usecase.ProductUseCase, zoneUC *usecase.ZoneUseCase) *PriceHandler {
	return &PriceHandler{uc: uc, productUC: productUC, zoneUC: zoneUC}
}

func (h *PriceHandler) formData(c *fiber.Ctx, extra fiber.Map) fiber.Map {
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
func (h *PriceHandler) List(c *fiber.Ctx) error {
	prices, err := h.uc.List(c.Context())
	if err != nil {
		return render(c, "prices/list", fiber.Map{"Error": "Erreur lors du chargement"})
	}
	return render(c, "prices/list", fiber.Map{"Prices": prices})
}

// ByProduct affiche les relevés d'un produit ; produit inconnu -> retour à la liste.
func (h *PriceHandler) ByProduct(c *fiber.Ctx) error {
	product, err := h.productUC.GetByID(c.Context(), c.Params("id"))
	if err != nil || product == nil {
		return c.Redirect("/prices", fiber.StatusSeeOther)
	}
	prices, err := h.uc.ListByProduct(c.Context(), product.ID)
	if err != nil {
		return render(c, "prices/by_product", fiber.Map{"Product": product, "Error": "Erreur lors du chargement"})
	}
	return render(c, "prices/by_product", fiber.Map{"Product": product, "Prices": prices})
}

// ByZone affiche les relevés d'une zone ; zone inconnue -> retour à la liste.
func (h *PriceHandler) ByZone(c *fiber.Ctx) error {
	zone, err := h.zoneUC.GetByID(c.Context(), c.Params("id"))
	if err != nil || zone == nil {
		return c.Redirect("/prices", fiber.StatusSeeOther)
	}
	prices, err := h.uc.ListByZone(c.Context(), zone.ID)
	if err != nil {
		return render(c, "prices/by_zone", fiber.Map{"Zone": zone, "Error": "Erreur lors du chargement"})
	}
	return render(c, "prices/by_zone", fiber.Map{"Zone": zone, "Prices": prices})
}

// Latest affiche le relevé de prix le plus récent de chaque produit.
func (h *PriceHandler) Latest(c *fiber.Ctx) error {
	prices, err := h.uc.LatestPerProduct(c.Context())
	if err != nil {
		return render(c, "prices/latest", fiber.Map{"Error": "Erreur lors du chargement"})
	}
	return render(c, "prices/latest", fiber.Map{"Prices": prices})
}

// AddForm affiche le formulaire d'ajout avec les menus déroulants produit/zone.
func (h *PriceHandler) AddForm(c *fiber.Ctx) error {
	return render(c, "prices/form", h.formData(c, nil))
}

// Add valide puis insère un nouveau relevé.
func (h *PriceHandler) Add(c *fiber.Ctx) error {
	var in dto.PriceForm
	if err := c.BodyParser(&in); err != nil {
		return render(c, "prices/form", h.formData(c, fiber.Map{"Error": "Formulaire invalide"}))
	}
	if errs := in.Validate(); len(errs) > 0 {
		return render(c, "prices/form", h.formData(c, fiber.Map{"Error": errs[0], "Form": in}))
	}
	user := CurrentUser(c)
	if _, err := h.uc.Create(c.Context(), in, &user.ID); err != nil {
		return render(c, "prices/form", h.formData(c, fiber.Map{"Error": "Erreur lors de l'enregistrement", "Form": in}))
	}
	return c.Redirect("/prices", fiber.StatusSeeOther)
}

// EditForm affiche le formulaire pré-rempli ; id inconnu -> retour à la liste.
func (h *PriceHandler) EditForm(c *fiber.Ctx) error {
	price, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil || price == nil {
		return c.Redirect("/prices", fiber.StatusSeeOther)
	}
	return render(c, "prices/edit", h.formData(c, fiber.Map{"Price": price}))
}

// Edit écrase les champs du relevé puis revient à la liste.
func (h *PriceHandler) Edit(c *fiber.Ctx) error {
	var in dto.PriceForm
	if err := c.BodyParser(&in); err != nil {
		return c.Redirect("/prices", fiber.StatusSeeOther)
	}
	id := c.Params("id")
	if errs := in.Validate(); len(errs) > 0 {
		price, err := h.uc.GetByID(c.Context(), id)
		if err != nil || price == nil {
			return c.Redirect("/prices", fiber.StatusSeeOther)
		}
		return render(c, "prices/edit", h.formData(c, fiber.Map{"Error": errs[0], "Price": price, "Form": in}))
	}
	if _, err := h.uc.Update(c.Context(), id, in); err != nil {
		return c.Redirect("/prices", fiber.StatusSeeOther)
	}
	return c.Redirect("/prices", fiber.StatusSeeOther)
}

// Delete supprime puis revient à la liste ; id inconnu -> simple redirection.
func (h *PriceHandler) Delete(c *fiber.Ctx) error {
	_ = h.uc.Delete(c.Context(), c.Params("id"))
	return c.Redirect("/prices", fiber.StatusSeeOther)
}
