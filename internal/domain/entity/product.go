package entity

import "time"

// Product est une denrée suivie sur les marchés (maïs, gari, huile de palme...).
type Product struct {
	ID          string
	Name        string
	Category    string
	Unit        string // unité de mesure : kg, sac de 50kg, litre...
	Description string
	CreatedBy   *string // nul pour les lignes importées par le seed
	CreatedAt   time.Time
}
