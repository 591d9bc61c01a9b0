package dto

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ProductForm champs des formulaires d'ajout et d'édition de produit.
type ProductForm struct {
	Name        string `form:"name"`
	Category    string `form:"category"`
	Unit        string `form:"unit"`
	Description string `form:"description"`
}

// Validate collecte les erreurs de validation du produit.
func (f *ProductForm) Validate() []string {
	var errs []string

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs = append(errs, "Le nom du produit est requis")
	} else if utf8.RuneCountInString(name) < 2 {
		errs = append(errs, "Le nom du produit doit contenir au moins 2 caractères")
	}

	if f.Category == "" {
		errs = append(errs, "La catégorie est requise")
	}
	if f.Unit == "" {
		errs = append(errs, "L'unité de mesure est requise")
	}

	description := strings.TrimSpace(f.Description)
	if description == "" {
		errs = append(errs, "La description est requise")
	} else if utf8.RuneCountInString(description) < 5 {
		errs = append(errs, "La description doit contenir au moins 5 caractères")
	}

	return errs
}

// ProductResponse représentation JSON d'un produit (/api/products).
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
