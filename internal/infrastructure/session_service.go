package infrastructure

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shopfront/internal/domain/entities"
)

var ErrInvalidSession = errors.New("invalid session token")

// SessionService signs and parses session tokens. The token carries the
// identity's email and phone; expiration slides because protected-route
// access re-issues the token.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionService(secret []byte, ttl time.Duration) *SessionService {
	return &SessionService{
		secret: secret,
		ttl:    ttl,
	}
}

func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

func (s *SessionService) Issue(email, phone string, permanent bool) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.ttl)

	claims := jwt.MapClaims{
		"email":     email,
		"phone":     phone,
		"permanent": permanent,
		"jti":       uuid.NewString(),
		"exp":       expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *SessionService) Parse(tokenString string) (*entities.Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}

	email, _ := claims["email"].(string)
	phone, _ := claims["phone"].(string)
	if email == "" || phone == "" {
		return nil, ErrInvalidSession
	}
	permanent, _ := claims["permanent"].(bool)

	session := &entities.Session{
		Email:     email,
		Phone:     phone,
		Permanent: permanent,
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}
	return session, nil
}
