package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"communityhub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// JWTSigner signs session cookies with HS256. The token's jti is the session id and sub is the user id.
type JWTSigner struct {
	secret []byte
}

// NewJWTSigner returns a signer keyed by secret.
func NewJWTSigner(secret string) *JWTSigner {
	return &JWTSigner{secret: []byte(secret)}
}

var (
	_ domain.TokenIssuer   = (*JWTSigner)(nil)
	_ domain.TokenVerifier = (*JWTSigner)(nil)
)

func (s *JWTSigner) Issue(sessionID string, userID int64, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *JWTSigner) Verify(token string) (string, int64, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if claims.ID == "" {
		return "", 0, fmt.Errorf("%w: missing session id", domain.ErrUnauthenticated)
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return "", 0, errors.Join(domain.ErrUnauthenticated, err)
	}
	return claims.ID, userID, nil
}
