// Package wizard implementa los asistentes de conversación: secuencias
// lineales de pasos que recogen campos y terminan en una escritura de
// persistencia. Los estados son una unión cerrada; cada estado lleva consigo
// los campos ya recogidos, así avanzar es construir el estado siguiente.
package wizard

import "github.com/shopspring/decimal"

// State es un paso activo de un asistente. Unión cerrada: solo los tipos de
// este paquete la implementan. Una sesión tiene a lo sumo un State activo.
type State interface {
	wizardState()
}

// ── Asistente de pedido ───────────────────────────────────────────────────────

// AwaitingAddress espera la dirección de entrega. ProductID y Size quedaron
// fijados al pulsar el botón de compra.
type AwaitingAddress struct {
	ProductID int64
	Size      string
}

// ── Asistente de catálogo (admin) ─────────────────────────────────────────────

// AwaitingName espera el nombre del producto nuevo.
type AwaitingName struct{}

// AwaitingDescription espera la descripción.
type AwaitingDescription struct {
	Name string
}

// AwaitingPrice espera el precio (texto numérico, coma o punto decimal).
type AwaitingPrice struct {
	Name        string
	Description string
}

// AwaitingSizes espera las tallas separadas por comas.
type AwaitingSizes struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// AwaitingPhoto espera una foto adjunta o el texto literal "none".
type AwaitingPhoto struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Sizes       string
}

func (AwaitingAddress) wizardState()     {}
func (AwaitingName) wizardState()        {}
func (AwaitingDescription) wizardState() {}
func (AwaitingPrice) wizardState()       {}
func (AwaitingSizes) wizardState()       {}
func (AwaitingPhoto) wizardState()       {}

// IsOrderState indica si el estado pertenece al asistente de pedido.
func IsOrderState(st State) bool {
	_, ok := st.(AwaitingAddress)
	return ok
}

// IsCatalogState indica si el estado pertenece al asistente de catálogo.
func IsCatalogState(st State) bool {
	switch st.(type) {
	case AwaitingName, AwaitingDescription, AwaitingPrice, AwaitingSizes, AwaitingPhoto:
		return true
	}
	return false
}
