// Package auth issues the session tokens returned by a successful login and
// resolves them back to directory record ids.
package auth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/accountdesk/internal/common"
)

// Token modes accepted by NewIssuer.
const (
	ModeMock = "mock"
	ModeJWT  = "jwt"
)

// MockTokenPrefix prefixes every mock token; the record id follows it.
const MockTokenPrefix = "mock-jwt-token-"

// MockIssuer hands out "mock-jwt-token-<id>" tokens. Resolve accepts only
// the exact form Issue produces, so signs and leading zeros are rejected.
type MockIssuer struct{}

func (MockIssuer) Issue(userID int64) (string, error) {
	return MockTokenPrefix + strconv.FormatInt(userID, 10), nil
}

func (MockIssuer) Resolve(token string) (int64, error) {
	raw, ok := strings.CutPrefix(token, MockTokenPrefix)
	if !ok {
		return 0, common.ErrInvalidToken
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 || strconv.FormatInt(id, 10) != raw {
		return 0, common.ErrInvalidToken
	}
	return id, nil
}

// JWTIssuer hands out HS256 tokens signed with a shared secret.
type JWTIssuer struct {
	secret []byte
}

func NewJWTIssuer(secret string) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret)}
}

func (j *JWTIssuer) Issue(userID int64) (string, error) {
	return GenerateToken(userID, j.secret)
}

func (j *JWTIssuer) Resolve(token string) (int64, error) {
	return GetUserIDFromToken(token, j.secret)
}

// Issuer is the interface satisfied by both issuers.
type Issuer interface {
	Issue(userID int64) (string, error)
	Resolve(token string) (int64, error)
}

// NewIssuer picks an issuer by mode. JWT mode needs a non-empty secret.
func NewIssuer(mode, secret string) (Issuer, error) {
	switch mode {
	case "", ModeMock:
		return MockIssuer{}, nil
	case ModeJWT:
		if secret == "" {
			return nil, fmt.Errorf("token mode %q requires a secret key", mode)
		}
		return NewJWTIssuer(secret), nil
	default:
		return nil, fmt.Errorf("unknown token mode %q", mode)
	}
}
