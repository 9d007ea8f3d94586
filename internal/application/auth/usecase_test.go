package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/application/auth"
	"github.com/jhoicas/Propiedades-api/pkg/jwt"
)

func TestSessionUseCase_Issue(t *testing.T) {
	uc := auth.NewSessionUseCase(auth.JWTConfig{Secret: "s3cret", ExpMinutes: 60, Issuer: "test"})

	s1, err := uc.Issue("user-1")
	require.NoError(t, err)
	s2, err := uc.Issue("user-1")
	require.NoError(t, err)
	assert.NotEqual(t, s1.ID, s2.ID, "cada sesión tiene su propio borrador")

	claims, err := jwt.Parse("s3cret", s1.Token)
	require.NoError(t, err)
	assert.Equal(t, s1.ID, claims.SessionID)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestSessionUseCase_SinSecreto(t *testing.T) {
	_, err := auth.NewSessionUseCase(auth.JWTConfig{ExpMinutes: 60}).Issue("")
	assert.Error(t, err)
}
