package auth

import (
	"time"

	"plantel/pkg/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates bearer tokens.
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, tenantID kernel.TenantID, scopes []string) (string, error)
	GenerateRefreshToken(userID kernel.UserID) (string, error)
	ValidateToken(token string) (*Claims, error)
}

// Claims are the JWT claims carried by access tokens.
type Claims struct {
	UserID   string   `json:"uid"`
	TenantID string   `json:"tid"`
	Scopes   []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// JWTService implements TokenService with HMAC-signed JWTs.
type JWTService struct {
	secretKey       []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	issuer          string
}

// NewJWTService creates a JWT token service.
func NewJWTService(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration, issuer string) *JWTService {
	return &JWTService{
		secretKey:       []byte(secretKey),
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		issuer:          issuer,
	}
}

// GenerateAccessToken issues a signed access token for the user within a tenant.
func (s *JWTService) GenerateAccessToken(userID kernel.UserID, tenantID kernel.TenantID, scopes []string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID.String(),
		TenantID: tenantID.String(),
		Scopes:   scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", ErrTokenGenerationFailed().WithDetail("cause", err.Error())
	}
	return signed, nil
}

// GenerateRefreshToken issues a signed refresh token for the user.
func (s *JWTService) GenerateRefreshToken(userID kernel.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", ErrTokenGenerationFailed().WithDetail("cause", err.Error())
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken().WithDetail("alg", t.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, ErrInvalidToken().WithDetail("cause", err.Error())
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken()
	}
	return claims, nil
}
