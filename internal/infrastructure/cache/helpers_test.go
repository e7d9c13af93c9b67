//go:build unit || integration
// +build unit integration

package cache

import (
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
)

func sampleUser() *users.User {
	bd := time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC)
	restaurantID := int64(3)
	return &users.User{
		ID:               42,
		FirstName:        "Ana",
		LastName:         "Ruiz",
		IdentityDocument: "998877",
		Phone:            "+573001234567",
		BirthDate:        &bd,
		Email:            "ana@mail.com",
		Password:         "hash",
		Role:             &users.Role{ID: 3, Name: users.RoleEmployee, Description: "Restaurant employee"},
		RestaurantID:     &restaurantID,
	}
}
