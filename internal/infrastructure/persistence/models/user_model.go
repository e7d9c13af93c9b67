package models

import (
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
)

// UserModel is the GORM database model for the personal data of a user.
// Login data lives in CredentialModel and the restaurant binding of employees
// in EmployeeRestaurantModel.
type UserModel struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement"`
	FirstName          string     `gorm:"type:varchar(100);not null"`
	LastName           string     `gorm:"type:varchar(100);not null"`
	IdentityDocument   string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Phone              string     `gorm:"type:varchar(13);not null"`
	BirthDate          *time.Time `gorm:"type:date"`
	RoleID             int64      `gorm:"not null;index"`
	Role               RoleModel  `gorm:"foreignKey:RoleID"`
	Credential         *CredentialModel         `gorm:"foreignKey:UserID"`
	EmployeeRestaurant *EmployeeRestaurantModel `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// CredentialModel is the GORM database model for login credentials
type CredentialModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	UserID   int64  `gorm:"not null;uniqueIndex"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the table name for GORM
func (CredentialModel) TableName() string {
	return "credentials"
}

// EmployeeRestaurantModel binds an employee to the restaurant it works for
type EmployeeRestaurantModel struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	UserID       int64 `gorm:"not null;uniqueIndex"`
	RestaurantID int64 `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (EmployeeRestaurantModel) TableName() string {
	return "employee_restaurants"
}

// ToDomain converts GORM model and its loaded associations to a domain entity
func (m *UserModel) ToDomain() *users.User {
	u := &users.User{
		ID:               m.ID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		IdentityDocument: m.IdentityDocument,
		Phone:            m.Phone,
	}

	if m.BirthDate != nil {
		bd := time.Date(m.BirthDate.Year(), m.BirthDate.Month(), m.BirthDate.Day(), 0, 0, 0, 0, time.UTC)
		u.BirthDate = &bd
	}
	if m.Role.ID != 0 {
		u.Role = m.Role.ToDomain()
	}
	if m.Credential != nil {
		u.Email = m.Credential.Email
		u.Password = m.Credential.Password
	}
	if m.EmployeeRestaurant != nil {
		restaurantID := m.EmployeeRestaurant.RestaurantID
		u.RestaurantID = &restaurantID
	}

	return u
}

// FromDomain converts a domain entity to the GORM model with its associations.
// The role is referenced by ID only.
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.IdentityDocument = u.IdentityDocument
	m.Phone = u.Phone
	m.BirthDate = u.BirthDate

	if u.Role != nil {
		m.RoleID = u.Role.ID
		m.Role.FromDomain(u.Role)
	}

	m.Credential = &CredentialModel{
		UserID:   u.ID,
		Email:    u.Email,
		Password: u.Password,
	}

	m.EmployeeRestaurant = nil
	if u.RestaurantID != nil {
		m.EmployeeRestaurant = &EmployeeRestaurantModel{
			UserID:       u.ID,
			RestaurantID: *u.RestaurantID,
		}
	}
}
