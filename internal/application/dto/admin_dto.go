package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
	"github.com/jhoicas/Tienda-bot/internal/domain/repository"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LoginRequest credenciales del API admin.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token emitido.
type LoginResponse struct {
	Token string `json:"token"`
}

// StatsResponse agregado de ventas.
type StatsResponse struct {
	TotalOrders int             `json:"total_orders"`
	TotalSales  decimal.Decimal `json:"total_sales"`
}

// ToStatsResponse convierte el agregado del dominio.
func ToStatsResponse(s repository.Stats) StatsResponse {
	return StatsResponse{TotalOrders: s.TotalOrders, TotalSales: s.TotalSales}
}

// OrderResponse un pedido en el listado admin.
type OrderResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ProductID int64     `json:"product_id"`
	Size      string    `json:"size"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ToOrderResponse convierte la entidad.
func ToOrderResponse(o entity.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Username:  o.Username,
		ProductID: o.ProductID,
		Size:      o.Size,
		Address:   o.Address,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

// UpdateStatusRequest cambio de estado de un pedido.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
