package dto

import (
	"strings"
	"unicode/utf8"
)

// RegisterForm champs du formulaire d'inscription.
type RegisterForm struct {
	Username        string `form:"username"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

// Validate collecte les erreurs de validation ; la première est affichée à l'utilisateur.
// L'unicité de l'email et du username est vérifiée par le cas d'usage, pas ici.
func (f *RegisterForm) Validate() []string {
	var errs []string

	username := strings.TrimSpace(f.Username)
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		errs = append(errs, "Le nom d'utilisateur doit contenir entre 3 et 50 caractères")
	} else if !isAlnumUnderscore(username) {
		errs = append(errs, "Le nom d'utilisateur ne peut contenir que des lettres, chiffres et _")
	}

	email := strings.TrimSpace(f.Email)
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") || utf8.RuneCountInString(email) > 100 {
		errs = append(errs, "Veuillez entrer une adresse email valide")
	}

	if len(f.Password) < 6 {
		errs = append(errs, "Le mot de passe doit contenir au moins 6 caractères")
	}
	if f.Password != f.ConfirmPassword {
		errs = append(errs, "Les mots de passe ne correspondent pas")
	}

	return errs
}

func isAlnumUnderscore(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// LoginForm champs du formulaire de connexion.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}
