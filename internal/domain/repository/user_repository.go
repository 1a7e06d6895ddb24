package repository

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// EnsureUser inserta el usuario si no existe; si ya existe es un no-op y
	// el username guardado NO se actualiza. Nunca falla por duplicado.
	EnsureUser(id int64, username string) error
}
