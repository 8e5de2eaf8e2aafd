package entities

import "time"

// Session asserts a previously established identity. It is only valid as
// long as the (email, phone) pair still resolves to a stored user, which
// is re-checked on every protected request.
type Session struct {
	Email     string
	Phone     string
	Permanent bool
	ExpiresAt time.Time
}
