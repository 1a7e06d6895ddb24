package usecase

import (
	"context"

	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
	"github.com/jhoicas/Tienda-bot/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Lo implementa la infraestructura (sqlite.TxRunner).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// OrderUseCase casos de uso de pedidos: creación transaccional, cambio de
// estado y reportes de administración.
type OrderUseCase struct {
	tx     TxRunner
	orders repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(tx TxRunner, orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{tx: tx, orders: orders}
}

// Create registra al usuario (si hace falta) e inserta el pedido en una sola
// transacción, de modo que nunca queda un pedido apuntando a un usuario que
// no se llegó a crear. Devuelve el id del pedido.
func (uc *OrderUseCase) Create(ctx context.Context, userID int64, username string, productID int64, size, address string) (int64, error) {
	var orderID int64
	err := uc.tx.Run(ctx, func(userRepo repository.UserRepository, orderRepo repository.OrderRepository) error {
		if err := userRepo.EnsureUser(userID, username); err != nil {
			return err
		}
		order := &entity.Order{
			UserID:    userID,
			Username:  username,
			ProductID: productID,
			Size:      size,
			Address:   address,
			Status:    entity.StatusNew,
		}
		id, err := orderRepo.Create(order)
		if err != nil {
			return err
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// UpdateStatus sobrescribe el estado del pedido (cadena abierta, sin tabla de
// transiciones). Sobre un id inexistente es un no-op.
func (uc *OrderUseCase) UpdateStatus(id int64, status string) error {
	return uc.orders.UpdateStatus(id, status)
}

// Recent devuelve los últimos pedidos, más nuevos primero.
func (uc *OrderUseCase) Recent(limit int) ([]entity.Order, error) {
	return uc.orders.Recent(limit)
}

// Stats devuelve el agregado de ventas calculado en el momento.
func (uc *OrderUseCase) Stats() (repository.Stats, error) {
	return uc.orders.Stats()
}
