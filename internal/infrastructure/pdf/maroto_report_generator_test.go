package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
	"github.com/jhoicas/Tienda-bot/internal/domain/repository"
	"github.com/jhoicas/Tienda-bot/internal/infrastructure/pdf"
)

func TestGenerateOrdersReport_ProduceUnPDF(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	stats := repository.Stats{TotalOrders: 2, TotalSales: decimal.RequireFromString("41.99")}
	orders := []entity.Order{
		{ID: 2, UserID: 42, Username: "alice", ProductID: 1, Size: "M", Address: "221B Baker St", Status: entity.StatusNew, CreatedAt: time.Now()},
		{ID: 1, UserID: 43, Username: "bob", ProductID: 2, Size: "L", Address: "742 Evergreen Terrace", Status: entity.StatusCompleted, CreatedAt: time.Now()},
	}

	got, err := gen.GenerateOrdersReport(stats, orders)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]), "el documento debe empezar con la firma PDF")
}

// Sin pedidos el reporte igual se genera, solo con el encabezado.
func TestGenerateOrdersReport_SinPedidos(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	got, err := gen.GenerateOrdersReport(repository.Stats{}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
