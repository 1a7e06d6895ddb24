// Package session guarda el estado de asistente de cada sesión en memoria.
// Se inyecta explícitamente en vez de vivir como mapa global; se pierde al
// reiniciar el proceso (compromiso aceptado) y no expira solo.
package session

import (
	"sync"

	"github.com/jhoicas/Tienda-bot/internal/application/wizard"
)

// Store almacén clave de sesión -> estado de asistente. El RWMutex lo deja
// correcto aunque el despacho llegue a procesar sesiones en paralelo; dentro
// de una misma sesión se asume un solo evento en vuelo a la vez.
type Store struct {
	mu     sync.RWMutex
	states map[string]wizard.State
}

// NewStore construye el almacén vacío.
func NewStore() *Store {
	return &Store{states: make(map[string]wizard.State)}
}

// Get devuelve el estado activo de la sesión, si lo hay.
func (s *Store) Get(key string) (wizard.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[key]
	return st, ok
}

// Put fija el estado de la sesión. Sobrescribe sin aviso cualquier asistente
// incompleto anterior (last-write-wins).
func (s *Store) Put(key string, st wizard.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[key] = st
}

// Clear destruye el estado de la sesión (fin o cancelación del asistente).
func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, key)
}

// Len cantidad de sesiones con asistente activo.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
