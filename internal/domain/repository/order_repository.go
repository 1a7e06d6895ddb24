package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
)

// Stats agregado de ventas calculado en el momento de la consulta.
// TotalSales solo suma pedidos cuyo producto sigue existiendo (INNER JOIN).
type Stats struct {
	TotalOrders int
	TotalSales  decimal.Decimal
}

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) (int64, error)
	// UpdateStatus sobrescribe el estado sin validar transición; si el id no
	// existe es un no-op silencioso.
	UpdateStatus(id int64, status string) error
	// Recent devuelve los últimos pedidos, más nuevos primero.
	Recent(limit int) ([]entity.Order, error)
	Stats() (Stats, error)
}
