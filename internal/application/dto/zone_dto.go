package dto

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
)

// ZoneForm champs des formulaires d'ajout et d'édition de zone.
type ZoneForm struct {
	Name       string `form:"name"`
	Type       string `form:"type"`
	Department string `form:"department"`
	City       string `form:"city"`
}

// Validate collecte les erreurs de validation de la zone.
func (f *ZoneForm) Validate() []string {
	var errs []string

	name := strings.TrimSpace(f.Name)
	switch {
	case name == "":
		errs = append(errs, "Le nom de la zone est requis")
	case utf8.RuneCountInString(name) < 3:
		errs = append(errs, "Le nom de la zone doit contenir au moins 3 caractères")
	case utf8.RuneCountInString(name) > 100:
		errs = append(errs, "Le nom de la zone ne peut pas dépasser 100 caractères")
	}

	if f.Type == "" {
		errs = append(errs, "Le type de zone est requis")
	} else if !entity.IsValidZoneType(f.Type) {
		errs = append(errs, "Type de zone invalide")
	}

	if strings.TrimSpace(f.Department) == "" {
		errs = append(errs, "Le département est requis")
	}

	city := strings.TrimSpace(f.City)
	if city == "" {
		errs = append(errs, "La ville est requise")
	} else if utf8.RuneCountInString(city) < 2 {
		errs = append(errs, "La ville doit contenir au moins 2 caractères")
	}

	return errs
}

// ZoneResponse représentation JSON d'une zone (/api/zones).
type ZoneResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Department string    `json:"department"`
	City       string    `json:"city"`
	CreatedAt  time.Time `json:"created_at"`
}
