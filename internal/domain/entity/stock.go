package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock est un relevé de quantité : un produit, une zone, une quantité observée à une date.
// Chaque soumission crée une nouvelle ligne, même pour le même couple produit/zone —
// il n'y a pas de fusion des relevés.
type Stock struct {
	ID        string
	ProductID string
	ZoneID    string
	Quantity  decimal.Decimal
	Date      time.Time // date d'observation, par défaut la date de saisie
	Notes     string
	CreatedBy *string
	CreatedAt time.Time
}
