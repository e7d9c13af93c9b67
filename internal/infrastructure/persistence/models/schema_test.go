//go:build unit
// +build unit

package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestUserModel_SchemaRelations(t *testing.T) {
	s, err := schema.Parse(&UserModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "users", s.Table)

	tests := []struct {
		field string
		kind  schema.RelationshipType
		fk    string
		table string
	}{
		{"Role", schema.BelongsTo, "RoleID", "roles"},
		{"Credential", schema.HasOne, "UserID", "credentials"},
		{"EmployeeRestaurant", schema.HasOne, "UserID", "employee_restaurants"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			rel, ok := s.Relationships.Relations[tt.field]
			require.True(t, ok, "relation %s not parsed", tt.field)
			assert.Equal(t, tt.kind, rel.Type)
			assert.Equal(t, tt.table, rel.FieldSchema.Table)
			require.Len(t, rel.References, 1)
			assert.Equal(t, tt.fk, rel.References[0].ForeignKey.Name)
		})
	}
}

func TestChildModels_SchemaParse(t *testing.T) {
	cache := &sync.Map{}
	for _, m := range []interface{}{&RoleModel{}, &CredentialModel{}, &EmployeeRestaurantModel{}} {
		_, err := schema.Parse(m, cache, schema.NamingStrategy{})
		assert.NoError(t, err)
	}
}
