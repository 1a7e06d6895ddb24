package entity

import "time"

// StatusNew es el estado inicial de todo pedido. Los estados posteriores son
// cadenas abiertas elegidas por el admin; no hay tabla de transiciones.
const (
	StatusNew       = "New"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Order representa un pedido confirmado. Username es un snapshot del momento
// de la compra; el pedido nunca se borra, solo cambia Status.
type Order struct {
	ID        int64
	UserID    int64
	Username  string
	ProductID int64
	Size      string // una de las tallas del producto al momento de crear (no lo valida el storage)
	Address   string // texto libre, sin validación de formato
	Status    string
	CreatedAt time.Time
}
