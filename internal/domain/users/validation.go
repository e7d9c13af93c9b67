package users

import (
	"regexp"
)

// MaxPhoneLength is the maximum number of characters of a phone, '+' included.
const MaxPhoneLength = 13

var (
	emailPattern    = regexp.MustCompile(`^[A-Za-z\d+_.-]+@[A-Za-z\d.-]+\.[A-Za-z]{2,}$`)
	phonePattern    = regexp.MustCompile(`^\+?\d{1,12}$`)
	documentPattern = regexp.MustCompile(`^\d+$`)
)

// ValidateEmail checks the email format.
func ValidateEmail(email string) error {
	if email == "" || !emailPattern.MatchString(email) {
		return NewError(ErrInvalidEmail, "Invalid email format")
	}
	return nil
}

// ValidatePhone checks the phone: up to 12 digits with an optional leading '+'.
func ValidatePhone(phone string) error {
	if phone == "" || len(phone) > MaxPhoneLength || !phonePattern.MatchString(phone) {
		return NewError(ErrInvalidPhone,
			"Phone must have a maximum of 13 characters and may contain the + symbol. Example: +573005698325")
	}
	return nil
}

// ValidateDocument checks that the identity document is numeric.
func ValidateDocument(document string) error {
	if document == "" || !documentPattern.MatchString(document) {
		return NewError(ErrInvalidDocument, "Identity document must be numeric only")
	}
	return nil
}

// ValidateRestaurant checks that an employee is bound to a restaurant.
func ValidateRestaurant(restaurantID *int64) error {
	if restaurantID == nil {
		return NewError(ErrInvalidRestaurant, "Restaurant ID is required")
	}
	return nil
}

// ValidateContactFields runs the checks shared by every role, in order:
// email, phone, identity document.
func (u *User) ValidateContactFields() error {
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if err := ValidatePhone(u.Phone); err != nil {
		return err
	}
	return ValidateDocument(u.IdentityDocument)
}
