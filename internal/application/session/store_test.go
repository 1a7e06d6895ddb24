package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-bot/internal/application/session"
	"github.com/jhoicas/Tienda-bot/internal/application/wizard"
)

func TestStore_GetPutClear(t *testing.T) {
	s := session.NewStore()

	_, ok := s.Get("chat:1")
	assert.False(t, ok, "una sesión nueva no tiene estado")

	s.Put("chat:1", wizard.AwaitingName{})
	st, ok := s.Get("chat:1")
	require.True(t, ok)
	assert.IsType(t, wizard.AwaitingName{}, st)
	assert.Equal(t, 1, s.Len())

	s.Clear("chat:1")
	_, ok = s.Get("chat:1")
	assert.False(t, ok, "Clear debe destruir el estado")
	assert.Zero(t, s.Len())
}

// Put sobrescribe sin aviso el asistente incompleto anterior (last-write-wins):
// arrancar un asistente en medio de otro abandona el primero.
func TestStore_PutSobrescribeEstadoAnterior(t *testing.T) {
	s := session.NewStore()

	s.Put("chat:1", wizard.AwaitingAddress{ProductID: 7, Size: "M"})
	s.Put("chat:1", wizard.AwaitingName{})

	st, ok := s.Get("chat:1")
	require.True(t, ok)
	assert.IsType(t, wizard.AwaitingName{}, st, "el último Put gana")
	assert.Equal(t, 1, s.Len(), "sigue habiendo un solo estado por sesión")
}

// Las sesiones son independientes entre sí.
func TestStore_SesionesIndependientes(t *testing.T) {
	s := session.NewStore()

	s.Put("chat:1", wizard.AwaitingName{})
	s.Put("chat:2", wizard.AwaitingAddress{ProductID: 1, Size: "S"})

	s.Clear("chat:1")
	_, ok := s.Get("chat:2")
	assert.True(t, ok, "limpiar una sesión no debe tocar las demás")
	assert.Equal(t, 1, s.Len())
}
