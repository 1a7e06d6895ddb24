package sqlite

import (
	"fmt"

	"github.com/jhoicas/Tienda-bot/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre SQLite (usable con
// DB o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// EnsureUser registra al usuario en su primera interacción. INSERT OR IGNORE:
// llamadas posteriores no tocan la fila existente, ni siquiera si el username
// cambió en el canal.
func (r *UserRepo) EnsureUser(id int64, username string) error {
	_, err := r.q.Exec(
		`INSERT OR IGNORE INTO users (id, username) VALUES (?, ?)`,
		id, username,
	)
	if err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}
