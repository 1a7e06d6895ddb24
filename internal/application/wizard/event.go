package wizard

// EventKind clase de entrada que puede recibir un paso.
type EventKind string

const (
	KindText   EventKind = "text"
	KindButton EventKind = "button"
	KindPhoto  EventKind = "photo"
)

// Event entrada ya despachada hacia un asistente. Para texto, Text lleva la
// cadena literal; para foto, PhotoRef lleva la referencia opaca de la mayor
// resolución disponible (la resuelve el transporte, no este núcleo).
type Event struct {
	Kind     EventKind
	Text     string
	PhotoRef string
	UserID   int64
	Username string
}
