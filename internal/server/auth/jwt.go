package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountdesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the standard registered claims plus the directory record id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// GenerateToken signs an HS256 token for userID. The token carries no
// expiry, so the same id and secret always produce the same string.
func GenerateToken(userID int64, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: fmt.Sprintf("%d", userID),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies tokenString with secretKey and returns the
// record id it was issued for.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) || errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return 0, common.ErrInvalidToken
		}
		return 0, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}
