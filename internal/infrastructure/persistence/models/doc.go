// Package models holds the GORM rows behind users, roles, credentials and
// employee restaurant bindings, and their mapping to the users domain types.
package models
