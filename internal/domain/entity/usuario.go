package entity

import "time"

// Usuario del back-office (administración de catálogo, costos y remitos).
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	Nombre       string
	Rol          string // "admin" | "consulta"
	CreatedAt    time.Time
}
