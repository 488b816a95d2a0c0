package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resource-api/internal/application/auth"
	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/application/usecase"
	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/testutil/memstore"
	"github.com/jhoicas/resource-api/pkg/jwt"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	user, err := usecase.NewUserUseCase(store.Users()).Create(ctx, dto.CreateUserRequest{Username: "ana", Email: "ana@example.com", Password: "supersecreto"})
	require.NoError(t, err)

	uc := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: "secreto", ExpMinutes: 5, Issuer: "test"})
	assert.True(t, uc.Enabled())

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "supersecreto"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)

	userID, email, err := jwt.Parse("secreto", out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "ana@example.com", email)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	_, err := usecase.NewUserUseCase(store.Users()).Create(ctx, dto.CreateUserRequest{Username: "ana", Email: "ana@example.com", Password: "supersecreto"})
	require.NoError(t, err)
	uc := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: "secreto", ExpMinutes: 5})

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "supersecreto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
