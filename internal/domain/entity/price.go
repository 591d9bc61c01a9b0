package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price est un relevé de prix : même forme que Stock avec un montant en FCFA
// à la place de la quantité.
type Price struct {
	ID        string
	ProductID string
	ZoneID    string
	Amount    decimal.Decimal
	Date      time.Time
	Notes     string
	CreatedBy *string
	CreatedAt time.Time
}
