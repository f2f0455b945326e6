package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// HasuraClaimsKey is the namespace of the data-API claims inside the JWT.
const HasuraClaimsKey = "https://hasura.io/jwt/claims"

// HasuraClaims are the session variables shared with the data-API layer.
type HasuraClaims struct {
	UserID       string   `json:"x-hasura-user-id"`
	DefaultRole  string   `json:"x-hasura-default-role"`
	AllowedRoles []string `json:"x-hasura-allowed-roles"`
	Role         string   `json:"x-hasura-role,omitempty"`
	CompanyID    string   `json:"x-hasura-entreprise-id,omitempty"`
}

// Claims defines the claims of the access tokens.
type Claims struct {
	Hasura HasuraClaims `json:"https://hasura.io/jwt/claims"`
	jwt.RegisteredClaims
}

// UserID parses the subject as a user ID.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// CompanyID parses the current company claim. ok is false when the claim is absent.
func (c *Claims) CompanyID() (id uuid.UUID, ok bool, err error) {
	if c.Hasura.CompanyID == "" {
		return uuid.Nil, false, nil
	}
	id, err = uuid.Parse(c.Hasura.CompanyID)
	if err != nil {
		return uuid.Nil, false, err
	}

	return id, true, nil
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates an access token for a user acting in a company.
	GenerateAccessToken(userID uuid.UUID, companyID *uuid.UUID, role string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
