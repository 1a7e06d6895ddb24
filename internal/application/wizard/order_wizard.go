package wizard

import (
	"context"

	"github.com/jhoicas/Tienda-bot/internal/application/usecase"
	"github.com/jhoicas/Tienda-bot/internal/domain"
	"github.com/jhoicas/Tienda-bot/internal/locales"
)

// OrderWizard asistente de pedido: un solo paso (dirección) y commit.
// La selección de producto y talla ocurre antes, en el catálogo.
type OrderWizard struct {
	orders *usecase.OrderUseCase
	loc    *locales.Locales
}

// NewOrderWizard construye el asistente.
func NewOrderWizard(orders *usecase.OrderUseCase, loc *locales.Locales) *OrderWizard {
	return &OrderWizard{orders: orders, loc: loc}
}

// Transition aplica el evento al estado actual y devuelve (estado siguiente,
// texto de respuesta, error). Estado siguiente nil significa asistente
// terminado: la sesión debe limpiarse. Ante un fallo de persistencia el
// estado se conserva y el texto ofrece reintentar, decisión explícita para
// que el usuario pueda reenviar la dirección.
func (w *OrderWizard) Transition(ctx context.Context, st State, ev Event, lang string) (State, string, error) {
	cur, ok := st.(AwaitingAddress)
	if !ok || ev.Kind != KindText {
		return st, "", domain.ErrUnroutableInput
	}

	// Cualquier texto vale como dirección, incluso vacío: no hay validación
	// de formato en este paso.
	orderID, err := w.orders.Create(ctx, ev.UserID, ev.Username, cur.ProductID, cur.Size, ev.Text)
	if err != nil {
		return cur, w.loc.Text(lang, "order_retry"), err
	}
	return nil, w.loc.Text(lang, "order_success", orderID), nil
}
