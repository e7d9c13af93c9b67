// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store users, their credentials, their
// restaurant binding and the role catalogue, and translates storage errors
// into the domain error kinds.
package persistence
