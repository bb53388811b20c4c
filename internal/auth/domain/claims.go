package domain

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified payload of a session token.
type Claims struct {
	ID        string // Token id (UUIDv7), unique per issuance
	Subject   string // Account id the token vouches for
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AccountID parses the subject as an account id.
func (c Claims) AccountID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidSubject
	}
	return id, nil
}

// IssuedToken is a freshly signed token together with the claims it encodes.
type IssuedToken struct {
	Token  string
	Claims Claims
}

// MaxAge returns the remaining lifetime in whole seconds, for the cookie Max-Age.
func (t *IssuedToken) MaxAge() int {
	return int(t.Claims.ExpiresAt.Sub(t.Claims.IssuedAt) / time.Second)
}
