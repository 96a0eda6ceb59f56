package security

import (
	"testing"
	"time"

	"Boomer/internal/api/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	InitJWT(config.JWTConfig{Secret: "test-secret", ExpireHours: 2, Issuer: "Boomer"})

	token, err := GenerateToken("neo_1a2b3c4d", "neo")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "neo_1a2b3c4d", claims.UserID)
	assert.Equal(t, "neo", claims.UserName)
	assert.InDelta(t, (2 * time.Hour).Seconds(), claims.Remaining().Seconds(), 5)

	sig, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.NotEmpty(t, sig)
}

func TestValidateTokenRejects(t *testing.T) {
	InitJWT(config.JWTConfig{Secret: "test-secret", ExpireHours: 1, Issuer: "Boomer"})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		claims := &UserClaims{
			UserID: "u_1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "Boomer",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
		require.NoError(t, err)
		_, err = ValidateToken(forged)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &UserClaims{
			UserID: "u_1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "Boomer",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = ValidateToken(expired)
		assert.Error(t, err)
	})
}

func TestExtractSignatureMalformed(t *testing.T) {
	_, err := ExtractSignature("a.b")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.NoError(t, CheckPasswordHash("s3cret!", hash))
	assert.ErrorIs(t, CheckPasswordHash("wrong", hash), ErrInvalidCredentials)

	_, err = HashPassword("")
	assert.Error(t, err)
}
