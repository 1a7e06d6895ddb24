package repository

import "github.com/jhoicas/Tienda-bot/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// No hay Update ni Delete: el catálogo es de solo inserción.
type ProductRepository interface {
	Create(product *entity.Product) (int64, error)
	// List devuelve el catálogo completo en orden de inserción.
	List() ([]entity.Product, error)
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(id int64) (*entity.Product, error)
}
