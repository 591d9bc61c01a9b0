package entity

import "time"

// Types de zone valides.
const (
	ZoneMarche         = "Marché"
	ZoneDepot          = "Dépôt"
	ZoneCommune        = "Commune"
	ZoneArrondissement = "Arrondissement"
)

// ZoneTypes liste les types acceptés, dans l'ordre d'affichage des formulaires.
var ZoneTypes = []string{ZoneMarche, ZoneDepot, ZoneCommune, ZoneArrondissement}

// IsValidZoneType vérifie l'appartenance à l'énumération des types de zone.
func IsValidZoneType(t string) bool {
	for _, z := range ZoneTypes {
		if t == z {
			return true
		}
	}
	return false
}

// Zone est un lieu physique de relevé : marché, dépôt, commune ou arrondissement.
type Zone struct {
	ID         string
	Name       string
	Type       string // voir ZoneTypes
	Department string
	City       string
	CreatedAt  time.Time
}
