package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IlyaM70/RedMango-API/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &entity.User{
		Email: "jamie@example.com",
		Name:  "Jamie Doe",
		Role:  entity.RoleCustomer,
	}
	user.ID = 15

	token, err := GenerateToken(user, "secret")
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, uint(15), claims.UserID)
	require.Equal(t, "Jamie Doe", claims.FullName)
	require.Equal(t, "jamie@example.com", claims.Email)
	require.Equal(t, entity.RoleCustomer, claims.Role)

	ttl := time.Until(claims.ExpiresAt.Time)
	require.InDelta(t, TokenTTL.Seconds(), ttl.Seconds(), 60)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := &entity.User{Email: "jamie@example.com", Role: entity.RoleCustomer}
	user.ID = 1

	token, err := GenerateToken(user, "secret")
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	require.Error(t, err)
}
