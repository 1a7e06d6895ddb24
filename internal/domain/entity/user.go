package entity

import "time"

// User representa a un comprador del bot. El ID es la identidad externa del
// canal de mensajería, no un autoincremental propio.
type User struct {
	ID           int64
	Username     string // puede venir vacío si el canal no lo expone
	RegisteredAt time.Time
}
