package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpcell/placement-portal/internal/app/models"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "placement-portal-test",
	})
}

func TestStudentTokenRoundTrip(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 7, Email: "asha@example.com"}

	token, expiresIn, err := svc.GenerateStudentToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.RoleType)
}

func TestAdminTokenCarriesNoUser(t *testing.T) {
	svc := testService(time.Hour)

	token, _, err := svc.GenerateAdminToken()
	require.NoError(t, err)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleAdmin), claims.RoleType)
	assert.Zero(t, claims.UserID)
	assert.Empty(t, claims.Email)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateStudentToken(&models.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	_, err = other.ValidateAndExtractClaims(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)
	token, _, err := svc.GenerateStudentToken(&models.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsStudentClaimsWithoutIdentity(t *testing.T) {
	svc := testService(time.Hour)
	token, _, err := svc.GenerateStudentToken(&models.User{ID: 0, Email: ""})
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
