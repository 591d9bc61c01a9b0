// Package web expose l'interface HTTP : pages HTML servies par Fiber,
// surface JSON read-only sous /api, et session portée par cookie signé.
package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hounsa/agrisuivi/internal/application/auth"
)

// RouterDeps regroupe les handlers câblés par le point d'entrée.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	Auth      *AuthHandler
	Product   *ProductHandler
	Zone      *ZoneHandler
	Stock     *StockHandler
	Price     *PriceHandler
	Dashboard *DashboardHandler
	API       *APIHandler
}

// Router enregistre toutes les routes de l'application.
//
// Le contrôle d'accès est déclaratif : SessionMiddleware résout l'utilisateur
// une seule fois, puis RequireUser / RequireUserAPI gardent chaque groupe
// protégé. Aucun handler ne revérifie la session lui-même.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.AuthUC))

	// Routes publiques
	app.Get("/", deps.Auth.Home)
	app.Get("/login", deps.Auth.LoginForm)
	app.Post("/login", deps.Auth.Login)
	app.Get("/register", deps.Auth.RegisterForm)
	app.Post("/register", deps.Auth.Register)
	app.Get("/logout", deps.Auth.Logout)

	app.Get("/dashboard", RequireUser(), deps.Dashboard.Show)

	products := app.Group("/products", RequireUser())
	products.Get("", deps.Product.List)
	products.Get("/add", deps.Product.AddForm)
	products.Post("/add", deps.Product.Add)
	products.Get("/edit/:id", deps.Product.EditForm)
	products.Post("/edit/:id", deps.Product.Edit)
	products.Get("/delete/:id", deps.Product.Delete)

	zones := app.Group("/zones", RequireUser())
	zones.Get("", deps.Zone.List)
	zones.Get("/add", deps.Zone.AddForm)
	zones.Post("/add", deps.Zone.Add)
	zones.Get("/edit/:id", deps.Zone.EditForm)
	zones.Post("/edit/:id", deps.Zone.Edit)
	zones.Get("/delete/:id", deps.Zone.Delete)

	stocks := app.Group("/stocks", RequireUser())
	stocks.Get("", deps.Stock.List)
	stocks.Get("/add", deps.Stock.AddForm)
	stocks.Post("/add", deps.Stock.Add)
	stocks.Get("/edit/:id", deps.Stock.EditForm)
	stocks.Post("/edit/:id", deps.Stock.Edit)
	stocks.Get("/delete/:id", deps.Stock.Delete)
	stocks.Get("/product/:id", deps.Stock.ByProduct)
	stocks.Get("/zone/:id", deps.Stock.ByZone)

	prices := app.Group("/prices", RequireUser())
	prices.Get("", deps.Price.List)
	prices.Get("/latest", deps.Price.Latest)
	prices.Get("/add", deps.Price.AddForm)
	prices.Post("/add", deps.Price.Add)
	prices.Get("/edit/:id", deps.Price.EditForm)
	prices.Post("/edit/:id", deps.Price.Edit)
	prices.Get("/delete/:id", deps.Price.Delete)
	prices.Get("/product/:id", deps.Price.ByProduct)
	prices.Get("/zone/:id", deps.Price.ByZone)

	// Surface JSON read-only
	api := app.Group("/api", RequireUserAPI())
	api.Get("/products", deps.API.Products)
	api.Get("/zones", deps.API.Zones)
	api.Get("/stocks", deps.API.Stocks)
	api.Get("/prices", deps.API.Prices)
	api.Get("/stats", deps.API.Stats)
}
