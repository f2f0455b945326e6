package auth

import (
	"testing"
	"time"

	"hivewatch/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	companyID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, &companyID, "Admin", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	gotUser, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)

	gotCompany, ok, err := claims.CompanyID()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, companyID, gotCompany)

	assert.Equal(t, "Admin", claims.Hasura.DefaultRole)
	assert.Equal(t, []string{"Admin"}, claims.Hasura.AllowedRoles)
	assert.Equal(t, userID.String(), claims.Hasura.UserID)
}

func TestJWTService_WithoutCompany(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(uuid.New(), nil, "Lecteur", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	_, ok, err := claims.CompanyID()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	expired, err := svc.GenerateAccessToken(uuid.New(), nil, "Admin", -time.Minute)
	require.NoError(t, err)

	otherSecret := &config.Config{}
	otherSecret.SecretKey.Access = "another_secret"
	otherSvc, err := NewJWTService(otherSecret)
	require.NoError(t, err)
	foreign, err := otherSvc.GenerateAccessToken(uuid.New(), nil, "Admin", time.Hour)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "clearly-not-a-jwt-token-format"},
		{"expired", expired},
		{"wrong secret", foreign},
		{"missing subject", noSubject},
		{"missing expiry", noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
