package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hounsa/agrisuivi/internal/domain/repository"
)

// TxRunner exécute un callback dans une transaction PostgreSQL.
// Utilisé par la commande seed pour charger le jeu de données d'un bloc :
// tout passe ou rien ne passe.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner sur le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Repos repositories liés à une même transaction.
type Repos struct {
	Users    repository.UserRepository
	Products repository.ProductRepository
	Zones    repository.ZoneRepository
	Stocks   repository.StockRepository
	Prices   repository.PriceRepository
}

// Run ouvre une transaction, exécute fn avec des repos liés à la tx, puis Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := Repos{
		Users:    NewUserRepository(tx),
		Products: NewProductRepository(tx),
		Zones:    NewZoneRepository(tx),
		Stocks:   NewStockRepository(tx),
		Prices:   NewPriceRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
