package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Formats acceptés pour la date d'observation saisie dans les formulaires.
var observationDateLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

// parseObservationDate interprète la date saisie ; retourne fallback si elle est vide ou illisible.
// Une date illisible ne bloque jamais la soumission — le relevé prend la date courante.
func parseObservationDate(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	for _, layout := range observationDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, fallback.Location()); err == nil {
			return t
		}
	}
	return fallback
}

// StockForm champs des formulaires d'ajout et d'édition de relevé de stock.
// Quantity reste une chaîne : la conversion fait partie de la validation.
type StockForm struct {
	ProductID string `form:"product_id"`
	ZoneID    string `form:"zone_id"`
	Quantity  string `form:"quantity"`
	Date      string `form:"date"`
	Notes     string `form:"notes"`
}

// Validate collecte les erreurs de validation du relevé de stock.
func (f *StockForm) Validate() []string {
	var errs []string

	if f.ProductID == "" {
		errs = append(errs, "Le produit est requis")
	}
	if f.ZoneID == "" {
		errs = append(errs, "La zone est requise")
	}

	qty, err := decimal.NewFromString(strings.TrimSpace(f.Quantity))
	if err != nil {
		errs = append(errs, "La quantité doit être un nombre valide")
	} else if qty.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "La quantité doit être supérieure à 0")
	}

	return errs
}

// QuantityValue retourne la quantité saisie ; à appeler après Validate.
func (f *StockForm) QuantityValue() decimal.Decimal {
	q, _ := decimal.NewFromString(strings.TrimSpace(f.Quantity))
	return q
}

// ObservedAt retourne la date d'observation saisie, ou now si absente/illisible.
func (f *StockForm) ObservedAt(now time.Time) time.Time {
	return parseObservationDate(f.Date, now)
}

// StockResponse représentation JSON d'un relevé de stock (/api/stocks).
type StockResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ZoneID      string          `json:"zone_id"`
	ZoneName    string          `json:"zone_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedBy   *string         `json:"created_by,omitempty"`
}
