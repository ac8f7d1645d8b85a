package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:      "test-secret-key",
		ExpiryHours: 24,
		Issuer:      "FreshNoodleAPI",
		Audience:    "FreshNoodleClient",
	}
}

func TestGenerateToken_Roundtrip(t *testing.T) {
	config := testJWTConfig()

	token, err := GenerateToken(42, "bob", "bob@x.com", []string{"Admin", "Accounting"}, config)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, config)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "bob", claims.Username)
	assert.Equal(t, "bob@x.com", claims.Email)
	assert.Equal(t, []string{"Admin", "Accounting"}, claims.Roles)
	assert.Equal(t, "FreshNoodleAPI", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, 24*3600, int(claims.ExpiresAt.Sub(claims.IssuedAt.Time).Seconds()))
}

func TestGenerateToken_UniqueJTI(t *testing.T) {
	config := testJWTConfig()

	first, err := GenerateToken(1, "bob", "bob@x.com", nil, config)
	require.NoError(t, err)
	second, err := GenerateToken(1, "bob", "bob@x.com", nil, config)
	require.NoError(t, err)

	firstClaims, err := ParseToken(first, config)
	require.NoError(t, err)
	secondClaims, err := ParseToken(second, config)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	config := testJWTConfig()

	token, err := GenerateToken(1, "bob", "bob@x.com", nil, config)
	require.NoError(t, err)

	wrong := config
	wrong.Secret = "another-secret"
	_, err = ParseToken(token, wrong)
	assert.Error(t, err)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	config := testJWTConfig()

	token, err := GenerateToken(1, "bob", "bob@x.com", nil, config)
	require.NoError(t, err)

	other := config
	other.Issuer = "SomeOtherAPI"
	_, err = ParseToken(token, other)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	config := testJWTConfig()
	config.ExpiryHours = -1

	token, err := GenerateToken(1, "bob", "bob@x.com", nil, config)
	require.NoError(t, err)

	_, err = ParseToken(token, config)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testJWTConfig())
	assert.Error(t, err)
}
