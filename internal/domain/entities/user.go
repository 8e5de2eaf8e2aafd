package entities

import (
	"regexp"
	"time"
)

// Identity is the email+phone pair; there is no password credential.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

// IsValidEmail reports whether email is an allowed Gmail address. The
// domain suffix is matched case-sensitively and no normalization is
// performed before storage or comparison.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone reports whether phone is exactly 10 decimal digits.
func IsValidPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

type User struct {
	ID        uint
	CreatedAt time.Time
	Email     string
	Phone     string
}

func NewUser(email, phone string) *User {
	return &User{
		CreatedAt: time.Now(),
		Email:     email,
		Phone:     phone,
	}
}

func (u *User) validate() error {
	if !IsValidEmail(u.Email) {
		return ErrInvalidEmail
	}
	if !IsValidPhone(u.Phone) {
		return ErrInvalidPhone
	}
	return nil
}
