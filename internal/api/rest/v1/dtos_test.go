//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOwnerRequest_ValidateAndMap(t *testing.T) {
	request := validOwnerRequest()
	require.NoError(t, request.Validate())

	user, err := request.ToDomain()
	require.NoError(t, err)
	require.NotNil(t, user.BirthDate)
	assert.Equal(t, time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC), *user.BirthDate)
	assert.Equal(t, "password123", user.Password)
	assert.Nil(t, user.Role)
}

func TestCreateOwnerRequest_Validate_AllBlank(t *testing.T) {
	var request CreateOwnerRequest

	err := request.Validate()

	var violations *validators.Violations
	require.ErrorAs(t, err, &violations)
	assert.Equal(t, "Birth date is required", violations.Message)
	assert.Len(t, violations.Details, 7)
	assert.Equal(t, "Identity document is required", violations.Details["identityDocument"])
}

func TestCreateClientRequest_OptionalBirthDate(t *testing.T) {
	request := CreateClientRequest{
		FirstName:        "Ana",
		LastName:         "Gomez",
		IdentityDocument: "987654",
		Phone:            "3001234567",
		Email:            "ana@mail.com",
		Password:         "secret",
	}
	require.NoError(t, request.Validate())

	user, err := request.ToDomain()
	require.NoError(t, err)
	assert.Nil(t, user.BirthDate)
	assert.Nil(t, user.RestaurantID)
}

func TestToUserResponse(t *testing.T) {
	restaurantID := int64(4)
	birth := time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC)
	user := &users.User{
		ID:           9,
		FirstName:    "Ana",
		BirthDate:    &birth,
		Email:        "ana@mail.com",
		Password:     "$2a$10$hash",
		Role:         &users.Role{ID: 3, Name: users.RoleEmployee},
		RestaurantID: &restaurantID,
	}

	resp := toUserResponse(user)

	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, users.RoleEmployee, resp.Role)
	require.NotNil(t, resp.BirthDate)
	assert.Equal(t, "2000-01-02", *resp.BirthDate)
	assert.Equal(t, &restaurantID, resp.RestaurantID)
}

func TestToUserResponse_NoRole(t *testing.T) {
	resp := toUserResponse(&users.User{ID: 1})

	assert.Empty(t, resp.Role)
	assert.Nil(t, resp.BirthDate)
}
