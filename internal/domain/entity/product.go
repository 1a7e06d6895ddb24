package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PhotoNone es el valor centinela para productos sin foto.
const PhotoNone = "none"

// Product representa un artículo del catálogo. Inmutable una vez creado:
// no existe edición ni borrado de productos.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, >= 0
	Sizes       []string        // tallas en el orden en que las escribió el admin
	PhotoRef    string          // referencia opaca a la foto, o PhotoNone
	CreatedAt   time.Time
}

// HasPhoto indica si el producto tiene una foto asociada.
func (p *Product) HasPhoto() bool {
	return p.PhotoRef != "" && p.PhotoRef != PhotoNone
}

// SplitSizes parte el texto de tallas separado por comas preservando el orden.
// "S, M, L" -> ["S" "M" "L"]. Entradas vacías se descartan.
func SplitSizes(s string) []string {
	parts := strings.Split(s, ",")
	sizes := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			sizes = append(sizes, t)
		}
	}
	return sizes
}

// JoinSizes serializa las tallas como texto separado por comas (forma en que
// se persisten).
func JoinSizes(sizes []string) string {
	return strings.Join(sizes, ",")
}
