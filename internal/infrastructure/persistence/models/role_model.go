package models

import (
	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
)

// RoleModel is the GORM database model for roles
type RoleModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (RoleModel) TableName() string {
	return "roles"
}

// ToDomain converts GORM model to domain entity
func (m *RoleModel) ToDomain() *users.Role {
	return &users.Role{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}

// FromDomain converts domain entity to GORM model
func (m *RoleModel) FromDomain(r *users.Role) {
	m.ID = r.ID
	m.Name = r.Name
	m.Description = r.Description
}
