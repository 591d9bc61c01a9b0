package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/application/usecase"
)

// ProductHandler pages CRUD des produits. Toutes les routes sont derrière RequireUser.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construit le handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List affiche tous les produits.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.Context())
	if err != nil {
		return render(c, "products/list", fiber.Map{"Error": "Erreur lors du chargement"})
	}
	return render(c, "products/list", fiber.Map{"Products": products})
}

// AddForm affiche le formulaire d'ajout vide.
func (h *ProductHandler) AddForm(c *fiber.Ctx) error {
	return render(c, "products/form", nil)
}

// Add valide puis insère ; en cas d'erreur le formulaire est réaffiché avec les valeurs saisies.
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return render(c, "products/form", fiber.Map{"Error": "Formulaire invalide"})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return render(c, "products/form", fiber.Map{"Error": errs[0], "Form": in})
	}
	user := CurrentUser(c)
	if _, err := h.uc.Create(c.Context(), in, &user.ID); err != nil {
		return render(c, "products/form", fiber.Map{"Error": "Erreur lors de l'enregistrement", "Form": in})
	}
	return c.Redirect("/products", fiber.StatusSeeOther)
}

// EditForm affiche le formulaire pré-rempli ; id inconnu -> retour à la liste.
func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil || product == nil {
		return c.Redirect("/products", fiber.StatusSeeOther)
	}
	return render(c, "products/edit", fiber.Map{"Product": product})
}

// Edit écrase les champs du produit puis revient à la liste.
func (h *ProductHandler) Edit(c *fiber.Ctx) error {
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return c.Redirect("/products", fiber.StatusSeeOther)
	}
	id := c.Params("id")
	if errs := in.Validate(); len(errs) > 0 {
		product, err := h.uc.GetByID(c.Context(), id)
		if err != nil || product == nil {
			return c.Redirect("/products", fiber.StatusSeeOther)
		}
		return render(c, "products/edit", fiber.Map{"Error": errs[0], "Product": product, "Form": in})
	}
	if _, err := h.uc.Update(c.Context(), id, in); err != nil {
		return c.Redirect("/products", fiber.StatusSeeOther)
	}
	return c.Redirect("/products", fiber.StatusSeeOther)
}

// Delete supprime puis revient à la liste ; id inconnu -> simple redirection.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	_ = h.uc.Delete(c.Context(), c.Params("id"))
	return c.Redirect("/products", fiber.StatusSeeOther)
}
