//go:build unit
// +build unit

package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"owner@restaurant.com", false},
		{"first.last+tag@mail.example.co", false},
		{"under_score-dash@host.io", false},
		{"", true},
		{"plainaddress", true},
		{"missing@tld", true},
		{"short@tld.c", true},
		{"spaces in@mail.com", true},
		{"@mail.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidEmail)
				assert.Equal(t, "Invalid email format", err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone   string
		wantErr bool
	}{
		{"+573005698325", false},
		{"3005698325", false},
		{"1", false},
		{"", true},
		{"+5730056983251", true},
		{"5730056983251", true},
		{"300-569-8325", true},
		{"++573005698", true},
		{"57300abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPhone)
				assert.Contains(t, err.Error(), "maximum of 13 characters")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument("1234567890"))

	for _, doc := range []string{"", "12.345", "ABC123", "-1"} {
		err := ValidateDocument(doc)
		require.Error(t, err, doc)
		assert.ErrorIs(t, err, ErrInvalidDocument)
		assert.Equal(t, "Identity document must be numeric only", err.Error())
	}
}

func TestValidateRestaurant(t *testing.T) {
	id := int64(7)
	assert.NoError(t, ValidateRestaurant(&id))

	err := ValidateRestaurant(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRestaurant)
	assert.Equal(t, "Restaurant ID is required", err.Error())
}

func TestUser_ValidateContactFields(t *testing.T) {
	valid := User{Email: "a@b.co", Phone: "+573005698325", IdentityDocument: "123"}
	assert.NoError(t, valid.ValidateContactFields())

	badEmail := valid
	badEmail.Email = "nope"
	badEmail.Phone = "bad"
	assert.ErrorIs(t, badEmail.ValidateContactFields(), ErrInvalidEmail)

	badPhone := valid
	badPhone.Phone = "bad"
	badPhone.IdentityDocument = "x"
	assert.ErrorIs(t, badPhone.ValidateContactFields(), ErrInvalidPhone)

	badDoc := valid
	badDoc.IdentityDocument = "x"
	assert.ErrorIs(t, badDoc.ValidateContactFields(), ErrInvalidDocument)
}
