package usecase

import (
	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
	"github.com/jhoicas/Tienda-bot/internal/domain/repository"
)

// OrdersReportGenerator puerto de generación del reporte PDF de ventas.
type OrdersReportGenerator interface {
	GenerateOrdersReport(stats repository.Stats, orders []entity.Order) ([]byte, error)
}

// ReportUseCase arma el reporte de ventas para el API de administración.
type ReportUseCase struct {
	orders    repository.OrderRepository
	generator OrdersReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(orders repository.OrderRepository, generator OrdersReportGenerator) *ReportUseCase {
	return &ReportUseCase{orders: orders, generator: generator}
}

// OrdersReport genera el PDF con el agregado de ventas y los últimos pedidos.
func (uc *ReportUseCase) OrdersReport(limit int) ([]byte, error) {
	stats, err := uc.orders.Stats()
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders.Recent(limit)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateOrdersReport(stats, orders)
}
