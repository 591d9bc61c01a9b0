package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PriceForm champs des formulaires d'ajout et d'édition de relevé de prix.
type PriceForm struct {
	ProductID string `form:"product_id"`
	ZoneID    string `form:"zone_id"`
	Price     string `form:"price"`
	Date      string `form:"date"`
	Notes     string `form:"notes"`
}

// Validate collecte les erreurs de validation du relevé de prix.
func (f *PriceForm) Validate() []string {
	var errs []string

	if f.ProductID == "" {
		errs = append(errs, "Le produit est requis")
	}
	if f.ZoneID == "" {
		errs = append(errs, "La zone est requise")
	}

	p, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil {
		errs = append(errs, "Le prix doit être un nombre valide")
	} else if p.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "Le prix doit être supérieur à 0")
	}

	return errs
}

// PriceValue retourne le montant saisi ; à appeler après Validate.
func (f *PriceForm) PriceValue() decimal.Decimal {
	p, _ := decimal.NewFromString(strings.TrimSpace(f.Price))
	return p
}

// ObservedAt retourne la date d'observation saisie, ou now si absente/illisible.
func (f *PriceForm) ObservedAt(now time.Time) time.Time {
	return parseObservationDate(f.Date, now)
}

// PriceResponse représentation JSON d'un relevé de prix (/api/prices).
type PriceResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ZoneID      string          `json:"zone_id"`
	ZoneName    string          `json:"zone_name"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedBy   *string         `json:"created_by,omitempty"`
}
