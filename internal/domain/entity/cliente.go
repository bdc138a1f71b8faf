package entity

import "time"

// Cliente destinatario de remitos.
type Cliente struct {
	ID        string
	Nombre    string
	CUIT      string
	Telefono  string
	Direccion string
	CreatedAt time.Time
}
