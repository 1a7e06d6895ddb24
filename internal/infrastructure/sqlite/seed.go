package sqlite

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
)

// catálogo de ejemplo para arrancar una tienda vacía
var seedProducts = []entity.Product{
	{Name: "Yellow Hoodie", Description: "Oversize bright yellow hoodie with embroidered logo.", Price: decimal.NewFromFloat(45.00), Sizes: []string{"S", "M", "L", "XL"}, PhotoRef: "assets/hoodie.png"},
	{Name: "Basic Tee", Description: "Black premium cotton t-shirt with a bold back print.", Price: decimal.NewFromFloat(22.00), Sizes: []string{"XS", "S", "M", "L"}, PhotoRef: "assets/tshirt.png"},
	{Name: "Tech Joggers", Description: "Graphite jogger pants for an active everyday.", Price: decimal.NewFromFloat(38.00), Sizes: []string{"M", "L", "XL"}, PhotoRef: "assets/joggers.png"},
	{Name: "Relax Sweatshirt", Description: "Long milky-white sweatshirt with a minimalist print.", Price: decimal.NewFromFloat(42.00), Sizes: []string{"S", "M", "L"}, PhotoRef: "assets/sweatshirt.png"},
	{Name: "Summer Bucket Hat", Description: "Yellow bucket hat for sunny days and loud outfits.", Price: decimal.NewFromFloat(15.00), Sizes: []string{"One Size"}, PhotoRef: "assets/panama.png"},
}

// Seed inserta los productos de ejemplo solo si el catálogo está vacío.
// Devuelve cuántos productos insertó (0 en ejecuciones repetidas).
func (s *Store) Seed() (int, error) {
	var count int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("contar productos: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	repo := NewProductRepository(s.DB)
	for i := range seedProducts {
		p := seedProducts[i]
		if _, err := repo.Create(&p); err != nil {
			return 0, fmt.Errorf("sembrar producto %q: %w", p.Name, err)
		}
	}
	return len(seedProducts), nil
}
