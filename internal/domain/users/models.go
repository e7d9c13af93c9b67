package users

import (
	"time"
)

// Role names known to the platform.
const (
	RoleAdmin    = "ADMIN"
	RoleOwner    = "OWNER"
	RoleEmployee = "EMPLOYEE"
	RoleClient   = "CLIENT"
)

// MinimumAge is the age in full years an owner must have reached.
const MinimumAge = 18

// Role entity
type Role struct {
	ID          int64
	Name        string
	Description string
}

// User entity. BirthDate and RestaurantID are optional depending on the role:
// owners need a birth date, employees a restaurant.
type User struct {
	ID               int64
	FirstName        string
	LastName         string
	IdentityDocument string
	Phone            string
	BirthDate        *time.Time
	Email            string
	Password         string
	Role             *Role
	RestaurantID     *int64
}

// RoleName returns the name of the user's role or "" when none is assigned.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	return u.RoleName() == name
}

// Clone returns a deep copy of the user. Pointer fields are not shared.
func (u *User) Clone() *User {
	c := *u
	if u.BirthDate != nil {
		bd := *u.BirthDate
		c.BirthDate = &bd
	}
	if u.Role != nil {
		r := *u.Role
		c.Role = &r
	}
	if u.RestaurantID != nil {
		id := *u.RestaurantID
		c.RestaurantID = &id
	}
	return &c
}

// WithoutPassword returns a deep copy of the user with the credential hash cleared.
func (u *User) WithoutPassword() *User {
	c := u.Clone()
	c.Password = ""
	return c
}

// ValidateAge checks that the user has a birth date and is at least
// MinimumAge full years old at now.
func (u *User) ValidateAge(now time.Time) error {
	if u.BirthDate == nil {
		return NewError(ErrUserUnderage, "Birth date is required")
	}

	if AgeAt(*u.BirthDate, now) < MinimumAge {
		return NewError(ErrUserUnderage, "User must be of legal age (18 years or older)")
	}

	return nil
}

// AgeAt returns the number of complete years between birthDate and now,
// comparing calendar dates only.
func AgeAt(birthDate, now time.Time) int {
	by, bm, bd := birthDate.Date()
	ny, nm, nd := now.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	return age
}
