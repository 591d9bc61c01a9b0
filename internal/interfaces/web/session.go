package web

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hounsa/agrisuivi/internal/application/auth"
	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/domain/entity"
)

// SessionCookie nom du cookie portant le jeton de session signé.
const SessionCookie = "session"

// Clé Locals de l'utilisateur résolu.
const localUser = "current_user"

// SessionMiddleware lit le cookie de session, résout l'utilisateur et le place dans c.Locals.
// Un cookie absent, invalide ou expiré donne simplement un état anonyme — jamais une erreur.
func SessionMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := authUC.Resolve(c.Context(), c.Cookies(SessionCookie))
		if user != nil {
			c.Locals(localUser, user)
		}
		return c.Next()
	}
}

// CurrentUser retourne l'utilisateur résolu par SessionMiddleware, ou nil si anonyme.
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(localUser).(*entity.User)
	return u
}

// RequireUser garde des pages HTML : redirige vers /login (303) si la requête est anonyme.
// Appliqué par groupe de routes — aucun handler ne refait le contrôle à la main.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireUserAPI garde de la surface /api : 401 JSON si la requête est anonyme.
func RequireUserAPI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "non authentifié"})
		}
		return c.Next()
	}
}

// setSessionCookie pose le cookie de session (HTTP-only, SameSite Lax).
func setSessionCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// clearSessionCookie supprime le cookie de session.
func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
