package auth_test

import (
	"testing"
	"time"

	"go-career-mentor-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	token, err := svc.Generate(42, "jane@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, email, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "jane@example.com", email)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenService("secret-a", time.Hour)
	verifier := auth.NewTokenService("secret-b", time.Hour)

	token, err := issuer.Generate(1, "a@b.c")
	assert.NoError(t, err)

	_, _, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	svc := auth.NewTokenService("test-secret", -time.Minute)

	token, err := svc.Generate(1, "a@b.c")
	assert.NoError(t, err)

	_, _, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestTokenRejectsEmpty(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)
	_, _, err := svc.Validate("")
	assert.Error(t, err)
}
