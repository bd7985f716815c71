package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the decoded principal of a signed-in user.
type Session struct {
	AccountID string
}

type claims struct {
	jwt.RegisteredClaims
}

// Parser validates access tokens signed with the platform's shared secret.
type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

// Parse verifies the token signature and expiry and returns the session.
// Any defect in the token means the caller is not signed in.
func (p *Parser) Parse(token string) (*Session, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnauthenticated, err)
	}
	if !parsed.Valid || c.Subject == "" {
		return nil, ErrUnauthenticated
	}
	return &Session{AccountID: c.Subject}, nil
}
