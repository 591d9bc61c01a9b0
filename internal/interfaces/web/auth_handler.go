package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hounsa/agrisuivi/internal/application/auth"
	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/domain"
)

// AuthHandler pages d'accueil, de connexion et d'inscription.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construit le handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Home page d'accueil ; les anonymes sont renvoyés vers la connexion.
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	if CurrentUser(c) == nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return render(c, "index", nil)
}

// LoginForm affiche le formulaire de connexion.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", nil)
}

// Login traite la soumission : vérifie les identifiants puis pose le cookie de session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginForm
	if err := c.BodyParser(&in); err != nil {
		return render(c, "login", fiber.Map{"Error": "Erreur lors de la connexion"})
	}
	if in.Email == "" || in.Password == "" {
		return render(c, "login", fiber.Map{"Error": "Email et mot de passe requis"})
	}
	token, _, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return render(c, "login", fiber.Map{"Error": "Email ou mot de passe incorrect"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return render(c, "login", fiber.Map{"Error": "Compte désactivé"})
		}
		return render(c, "login", fiber.Map{"Error": "Erreur lors de la connexion"})
	}
	setSessionCookie(c, token, h.uc.SessionTTL())
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// RegisterForm affiche le formulaire d'inscription.
func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", nil)
}

// Register valide le formulaire et crée le compte.
// En cas d'erreur, la première est affichée et les valeurs saisies sont conservées.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterForm
	if err := c.BodyParser(&in); err != nil {
		return render(c, "register", fiber.Map{"Error": "Formulaire invalide"})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return render(c, "register", fiber.Map{"Error": errs[0], "Form": in})
	}
	if _, err := h.uc.Register(c.Context(), in); err != nil {
		msg := "Erreur lors de l'enregistrement"
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			msg = "Cet email est déjà utilisé"
		} else if errors.Is(err, domain.ErrUsernameTaken) {
			msg = "Ce nom d'utilisateur est déjà utilisé"
		}
		return render(c, "register", fiber.Map{"Error": msg, "Form": in})
	}
	return render(c, "login", fiber.Map{
		"Success": "Inscription réussie ! Vous pouvez maintenant vous connecter.",
	})
}

// Logout supprime le cookie de session et renvoie vers l'accueil.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearSessionCookie(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}
