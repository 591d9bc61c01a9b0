// Commande seed : charge un jeu de données de démonstration dans la base.
// Tout est inséré dans une seule transaction — en cas d'erreur rien n'est écrit.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
	"github.com/hounsa/agrisuivi/internal/infrastructure/postgres"
	"github.com/hounsa/agrisuivi/pkg/config"
	"github.com/hounsa/agrisuivi/pkg/logger"
)

type productSeed struct {
	name, category, unit, description string
}

type zoneSeed struct {
	name, zoneType, department, city string
}

var productSeeds = []productSeed{
	{"Maïs", "Céréale", "kg", "Maïs blanc local"},
	{"Riz", "Céréale", "sac", "Riz long grain"},
	{"Tomate", "Légume", "kg", "Tomate fraîche"},
	{"Manioc", "Tubercule", "kg", "Manioc doux"},
	{"Haricot", "Légumineuse", "kg", "Haricot blanc"},
	{"Arachide", "Oléagineux", "kg", "Arachide décortiquée"},
	{"Igname", "Tubercule", "kg", "Igname de Parakou"},
	{"Mil", "Céréale", "kg", "Mil local"},
	{"Sorgho", "Céréale", "kg", "Sorgho rouge"},
	{"Piment", "Épice", "kg", "Piment frais"},
}

var zoneSeeds = []zoneSeed{
	{"Marché Dantokpa", entity.ZoneMarche, "Littoral", "Cotonou"},
	{"Marché Arzèkè", entity.ZoneMarche, "Ouémé", "Porto-Novo"},
	{"Dépôt de Parakou", entity.ZoneDepot, "Borgou", "Parakou"},
	{"Marché de Bohicon", entity.ZoneMarche, "Zou", "Bohicon"},
	{"Marché de Natitingou", entity.ZoneMarche, "Atacora", "Natitingou"},
	{"Dépôt de Lokossa", entity.ZoneDepot, "Mono", "Lokossa"},
	{"Marché de Kandi", entity.ZoneMarche, "Alibori", "Kandi"},
	{"Marché de Savè", entity.ZoneMarche, "Collines", "Savè"},
	{"Dépôt d'Abomey", entity.ZoneDepot, "Zou", "Abomey"},
	{"Marché de Ouidah", entity.ZoneMarche, "Atlantique", "Ouidah"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	runner := postgres.NewTxRunner(pool)
	err = runner.Run(ctx, func(repos postgres.Repos) error {
		now := time.Now()

		// Compte de démonstration : demo@agrisuivi.bj / demo123
		hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		demo := &entity.User{
			ID:           uuid.New().String(),
			Username:     "demo",
			Email:        "demo@agrisuivi.bj",
			PasswordHash: string(hash),
			IsActive:     true,
			IsAdmin:      true,
			CreatedAt:    now,
		}
		if existing, _ := repos.Users.GetByEmail(ctx, demo.Email); existing == nil {
			if err := repos.Users.Create(ctx, demo); err != nil {
				return fmt.Errorf("créer l'utilisateur demo: %w", err)
			}
		} else {
			demo = existing
		}

		// Agent de terrain sans droits d'administration : agent@agrisuivi.bj / demo123
		agent := &entity.User{
			ID:           uuid.New().String(),
			Username:     "agent_terrain",
			Email:        "agent@agrisuivi.bj",
			PasswordHash: string(hash),
			IsActive:     true,
			IsAdmin:      false,
			CreatedAt:    now,
		}
		if existing, _ := repos.Users.GetByEmail(ctx, agent.Email); existing == nil {
			if err := repos.Users.Create(ctx, agent); err != nil {
				return fmt.Errorf("créer l'utilisateur agent: %w", err)
			}
		}

		var products []*entity.Product
		for _, p := range productSeeds {
			product := &entity.Product{
				ID:          uuid.New().String(),
				Name:        p.name,
				Category:    p.category,
				Unit:        p.unit,
				Description: p.description,
				CreatedBy:   &demo.ID,
				CreatedAt:   now,
			}
			if err := repos.Products.Create(ctx, product); err != nil {
				return fmt.Errorf("créer le produit %s: %w", p.name, err)
			}
			products = append(products, product)
		}

		var zones []*entity.Zone
		for _, z := range zoneSeeds {
			zone := &entity.Zone{
				ID:         uuid.New().String(),
				Name:       z.name,
				Type:       z.zoneType,
				Department: z.department,
				City:       z.city,
				CreatedAt:  now,
			}
			if err := repos.Zones.Create(ctx, zone); err != nil {
				return fmt.Errorf("créer la zone %s: %w", z.name, err)
			}
			zones = append(zones, zone)
		}

		rng := rand.New(rand.NewSource(now.UnixNano()))

		// 30 relevés de stock dont quelques-uns sous le seuil d'alerte
		for i := 0; i < 30; i++ {
			var qty float64
			switch {
			case i < 5:
				qty = 10 + rng.Float64()*40 // très faibles
			case i < 10:
				qty = 51 + rng.Float64()*48 // faibles
			default:
				qty = 100 + rng.Float64()*4900
			}
			stock := &entity.Stock{
				ID:        uuid.New().String(),
				ProductID: products[rng.Intn(len(products))].ID,
				ZoneID:    zones[rng.Intn(len(zones))].ID,
				Quantity:  decimal.NewFromFloat(qty).Round(2),
				Date:      now.AddDate(0, 0, -rng.Intn(31)),
				Notes:     fmt.Sprintf("Relevé de démonstration %d", i+1),
				CreatedBy: &demo.ID,
				CreatedAt: now,
			}
			if err := repos.Stocks.Create(ctx, stock); err != nil {
				return fmt.Errorf("créer le relevé de stock %d: %w", i+1, err)
			}
		}

		// 40 relevés de prix étalés sur 40 jours, avec une tendance par produit
		for i := 0; i < 40; i++ {
			product := products[rng.Intn(len(products))]
			var amount float64
			switch product.Name {
			case "Maïs":
				amount = 500 + float64(i)*10 // hausse progressive
			case "Riz":
				amount = 7500 // stable
			case "Tomate":
				amount = float64(250 + 50*rng.Intn(6)) // très variable
			default:
				amount = 200 + rng.Float64()*1800
			}
			price := &entity.Price{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				ZoneID:    zones[rng.Intn(len(zones))].ID,
				Amount:    decimal.NewFromFloat(amount).Round(0),
				Date:      now.AddDate(0, 0, -i),
				Notes:     fmt.Sprintf("Prix de démonstration %d", i+1),
				CreatedBy: &demo.ID,
				CreatedAt: now,
			}
			if err := repos.Prices.Create(ctx, price); err != nil {
				return fmt.Errorf("créer le relevé de prix %d: %w", i+1, err)
			}
		}

		// Prix des 7 derniers jours pour alimenter la courbe du tableau de bord
		for day := 0; day < 7; day++ {
			for _, product := range products[:5] {
				price := &entity.Price{
					ID:        uuid.New().String(),
					ProductID: product.ID,
					ZoneID:    zones[rng.Intn(len(zones))].ID,
					Amount:    decimal.NewFromFloat(300 + rng.Float64()*1200).Round(0),
					Date:      now.AddDate(0, 0, -day),
					Notes:     "Prix récent",
					CreatedBy: &demo.ID,
					CreatedAt: now,
				}
				if err := repos.Prices.Create(ctx, price); err != nil {
					return fmt.Errorf("créer le prix récent: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("chargement du jeu de données")
	}
	log.Info().Msg("jeu de données de démonstration chargé")
}
