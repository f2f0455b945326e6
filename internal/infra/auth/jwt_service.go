// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hivewatch/config"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
)

// jwtService validates the HS256 tokens issued by the auth backend and shared with the data-API layer.
type jwtService struct {
	accessSecret []byte
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
	}, nil
}

// GenerateAccessToken creates an access token carrying the data-API session claims.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, companyID *uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := &service.Claims{
		Hasura: service.HasuraClaims{
			UserID:       userID.String(),
			DefaultRole:  role,
			AllowedRoles: []string{role},
			Role:         role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if companyID != nil {
		claims.Hasura.CompanyID = companyID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken parses the token, checks the HMAC signature and expiry, and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	if _, err := claims.UserID(); err != nil {
		return nil, errors.Wrap(err, "token subject is not a user id")
	}

	return claims, nil
}
