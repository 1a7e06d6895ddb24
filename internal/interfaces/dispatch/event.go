// Package dispatch enruta los eventos entrantes del canal de mensajería
// hacia el asistente o manejador que corresponda a la sesión, y produce las
// respuestas (texto + teclado). El cliente de transporte real queda fuera:
// este paquete solo habla los contratos de entrada y salida.
package dispatch

// Clases de evento entrante, espejo de wizard.EventKind en el borde.
const (
	KindText   = "text"
	KindButton = "button"
	KindPhoto  = "photo"
)

// InboundEvent evento entrante desde la capa de transporte.
// Para kind=text, Payload es la cadena literal; para kind=button, el dato del
// botón pulsado; para kind=photo, la referencia opaca de la foto (la mayor
// resolución, resuelta por el transporte).
type InboundEvent struct {
	SessionKey   string `json:"session_key"`
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
	Kind         string `json:"kind"`
	Payload      string `json:"payload"`
}

// Button un botón del teclado de respuesta. Data vacío en teclados de menú
// (el transporte manda el Label de vuelta como texto).
type Button struct {
	Label string `json:"label"`
	Data  string `json:"data,omitempty"`
}

// Keyboard descripción estructurada del menú; el layout en pantalla es cosa
// del transporte.
type Keyboard struct {
	Inline bool       `json:"inline"`
	Rows   [][]Button `json:"rows"`
}

// Reply respuesta saliente hacia la capa de transporte. El envío de red no
// ocurre aquí.
type Reply struct {
	Text     string    `json:"text,omitempty"`
	Keyboard *Keyboard `json:"keyboard,omitempty"`
	PhotoRef string    `json:"photo_ref,omitempty"`
}
