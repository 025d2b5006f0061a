package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Scheduling-api/internal/application/auth"
	"github.com/jhoicas/Scheduling-api/internal/application/dto"
	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/pkg/jwt"
)

func newUseCase(t *testing.T) *auth.TokenUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewTokenUseCase(
		auth.Credentials{Username: "ops", PasswordHash: string(hash)},
		auth.JWTConfig{Secret: "jwt-secret", ExpMinutes: 30, Issuer: "scheduling-api"},
	)
}

func TestIssueToken_CredencialesValidas(t *testing.T) {
	uc := newUseCase(t)
	out, err := uc.IssueToken(dto.TokenRequest{Username: "ops", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, 1800, out.ExpiresIn)

	sub, role, err := jwt.Parse("jwt-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ops", sub)
	assert.Equal(t, auth.RoleOperator, role)
}

func TestIssueToken_CredencialesInvalidas(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.IssueToken(dto.TokenRequest{Username: "ops", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.IssueToken(dto.TokenRequest{Username: "other", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestIssueToken_SinConfigurar(t *testing.T) {
	uc := auth.NewTokenUseCase(auth.Credentials{}, auth.JWTConfig{})
	assert.False(t, uc.Enabled())
	_, err := uc.IssueToken(dto.TokenRequest{Username: "a", Password: "b"})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
