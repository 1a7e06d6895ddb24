package sqlite

import (
	"fmt"

	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
	"github.com/jhoicas/Tienda-bot/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre SQLite (usable
// con DB o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido nuevo con estado inicial New y devuelve su id.
func (r *OrderRepo) Create(order *entity.Order) (int64, error) {
	status := order.Status
	if status == "" {
		status = entity.StatusNew
	}
	res, err := r.q.Exec(
		`INSERT INTO orders (user_id, username, product_id, size, address, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		order.UserID, order.Username, order.ProductID, order.Size, order.Address, status,
	)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	order.ID = id
	order.Status = status
	return id, nil
}

// UpdateStatus sobrescribe el estado del pedido. No valida que el id exista
// ni que la transición tenga sentido: sobre un id inexistente es un no-op.
func (r *OrderRepo) UpdateStatus(id int64, status string) error {
	if _, err := r.q.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// Recent devuelve los últimos pedidos, más nuevos primero. El desempate por
// id mantiene el orden estable cuando varios pedidos caen en el mismo segundo.
func (r *OrderRepo) Recent(limit int) ([]entity.Order, error) {
	rows, err := r.q.Query(
		`SELECT id, user_id, username, product_id, size, address, status, created_at
		 FROM orders ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()

	var list []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Username, &o.ProductID, &o.Size, &o.Address, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Stats calcula el agregado en el momento de la consulta, sin mantenimiento
// incremental. El INNER JOIN hace que TotalSales solo cuente pedidos cuyo
// producto sigue existiendo.
func (r *OrderRepo) Stats() (repository.Stats, error) {
	var stats repository.Stats
	err := r.q.QueryRow(
		`SELECT COUNT(o.id), COALESCE(SUM(p.price), 0)
		 FROM orders o JOIN products p ON o.product_id = p.id`,
	).Scan(&stats.TotalOrders, &stats.TotalSales)
	if err != nil {
		return repository.Stats{}, fmt.Errorf("aggregate stats: %w", err)
	}
	return stats, nil
}
