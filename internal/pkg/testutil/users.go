package testutil

import (
	"fmt"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
)

// NewTestUser returns a valid adult user without role or ID. The sequence
// number keeps email and identity document unique within one test.
func NewTestUser(seq int) *users.User {
	birthDate := time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC)
	return &users.User{
		FirstName:        "Juan",
		LastName:         "Perez",
		IdentityDocument: fmt.Sprintf("10000%d", seq),
		Phone:            "+573005698325",
		BirthDate:        &birthDate,
		Email:            fmt.Sprintf("juan%d@restaurant.com", seq),
		Password:         "password123",
	}
}
