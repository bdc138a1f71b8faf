package repository

import "github.com/hierrosur/costos-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para usuarios del back-office.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByEmail(email string) (*entity.Usuario, error)
	GetByID(id string) (*entity.Usuario, error)
}
