package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
)

func TestSplitSizes(t *testing.T) {
	assert.Equal(t, []string{"S", "M", "L"}, entity.SplitSizes("S, M, L"),
		"los espacios alrededor de cada talla se recortan")
	assert.Equal(t, []string{"XL"}, entity.SplitSizes("XL"))
	assert.Equal(t, []string{"S", "L"}, entity.SplitSizes("S,,L"),
		"las entradas vacías se descartan")
	assert.Empty(t, entity.SplitSizes(""))
	assert.Equal(t, []string{"One Size"}, entity.SplitSizes(" One Size "),
		"una talla puede contener espacios internos")
}

func TestJoinSizes_RoundTrip(t *testing.T) {
	sizes := []string{"S", "M", "XL"}
	assert.Equal(t, "S,M,XL", entity.JoinSizes(sizes))
	assert.Equal(t, sizes, entity.SplitSizes(entity.JoinSizes(sizes)),
		"serializar y partir debe preservar orden y contenido")
}

func TestProduct_HasPhoto(t *testing.T) {
	assert.True(t, (&entity.Product{PhotoRef: "assets/cap.png"}).HasPhoto())
	assert.False(t, (&entity.Product{PhotoRef: entity.PhotoNone}).HasPhoto(),
		"el centinela 'none' cuenta como sin foto")
	assert.False(t, (&entity.Product{}).HasPhoto())
}
