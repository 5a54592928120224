package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "prisonerprofile/pkg/domain-errors"
)

func TestRoundTrip(t *testing.T) {
	svc := NewJWTService("test-signing-key", "auth-service", "prisoner-profile")

	token, err := svc.GenerateAccessToken("STAFF42", "Sam Jones", time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "STAFF42", claims.StaffID)
	assert.Equal(t, "Sam Jones", claims.Name)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService("test-signing-key", "auth-service", "prisoner-profile")

	token, err := svc.GenerateAccessToken("STAFF42", "Sam Jones", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	assert.Contains(t, err.Error(), "expired")
}

func TestWrongKeyRejected(t *testing.T) {
	issuer := NewJWTService("key-one", "auth-service", "prisoner-profile")
	verifier := NewJWTService("key-two", "auth-service", "prisoner-profile")

	token, err := issuer.GenerateAccessToken("STAFF42", "Sam Jones", time.Minute)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestMissingStaffIdentityRejected(t *testing.T) {
	svc := NewJWTService("test-signing-key", "auth-service", "prisoner-profile")

	token, err := svc.GenerateAccessToken("", "", time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := NewJWTService("test-signing-key", "auth-service", "prisoner-profile")

	_, err := svc.ValidateToken("not.a.jwt")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
