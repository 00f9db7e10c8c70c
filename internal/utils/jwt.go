package utils // helpers for admin tokens, password checks and identifiers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminToken is a signed JWT granting access to the admin endpoints, along
// with its expiry. There is no server-side session: being logged in means
// holding a token with a valid signature and an unexpired timestamp.
type AdminToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// ErrTokenInvalid is returned by ParseAdminToken for any token that does
// not grant admin access, whether malformed, forged or carrying the wrong
// claims. Expired tokens are reported as jwt.ErrTokenExpired instead.
var ErrTokenInvalid = errors.New("invalid admin token")

// NewAdminToken builds and signs an HS256 JWT carrying the isAdmin claim.
// ttl controls how long the token (and therefore the admin session) lives.
func NewAdminToken(secret string, ttl time.Duration) (AdminToken, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"isAdmin": true,
		"exp":     exp.Unix(),
		"iat":     now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AdminToken{}, err
	}
	return AdminToken{Token: signed, Exp: exp}, nil
}

// ParseAdminToken verifies the signature, expiry and isAdmin claim of a
// token produced by NewAdminToken.
func ParseAdminToken(secret, raw string) error {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is ever used to sign admin tokens.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return jwt.ErrTokenExpired
		}
		return ErrTokenInvalid
	}
	if !tok.Valid {
		return ErrTokenInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return ErrTokenInvalid
	}
	if isAdmin, _ := claims["isAdmin"].(bool); !isAdmin {
		return ErrTokenInvalid
	}
	return nil
}
