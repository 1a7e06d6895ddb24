package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
	"github.com/jhoicas/Tienda-bot/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo y devuelve el id autoincremental.
// Las tallas se serializan como texto separado por comas.
func (r *ProductRepo) Create(product *entity.Product) (int64, error) {
	res, err := r.q.Exec(
		`INSERT INTO products (name, description, price, sizes, photo_ref, created_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		product.Name, product.Description, product.Price, entity.JoinSizes(product.Sizes), product.PhotoRef,
	)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	product.ID = id
	return id, nil
}

// List devuelve el catálogo completo en orden de inserción (scan total).
func (r *ProductRepo) List() ([]entity.Product, error) {
	rows, err := r.q.Query(
		`SELECT id, name, description, price, sizes, photo_ref, created_at
		 FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por id. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	row := r.q.QueryRow(
		`SELECT id, name, description, price, sizes, photo_ref, created_at
		 FROM products WHERE id = ?`,
		id,
	)
	p, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func scanProduct(scan func(dest ...any) error) (*entity.Product, error) {
	var (
		p        entity.Product
		sizes    string
		photoRef sql.NullString
	)
	if err := scan(&p.ID, &p.Name, &p.Description, &p.Price, &sizes, &photoRef, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Sizes = entity.SplitSizes(sizes)
	p.PhotoRef = photoRef.String
	return &p, nil
}
