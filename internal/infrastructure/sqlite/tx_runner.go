package sqlite

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-bot/internal/application/usecase"
	"github.com/jhoicas/Tienda-bot/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite. Cierra la
// ventana "ensure user y luego insert pedido" en una sola unidad atómica.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.store.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	userRepo := NewUserRepository(tx)
	orderRepo := NewOrderRepository(tx)

	if err := fn(userRepo, orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
