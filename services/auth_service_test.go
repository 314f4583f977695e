package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IlyaM70/RedMango-API/entity"
	"github.com/IlyaM70/RedMango-API/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	user, err := svc.Register("jamie@example.com", "hunter22", "Jamie Doe", "")
	require.NoError(t, err)
	require.Equal(t, entity.RoleCustomer, user.Role)

	result, err := svc.Login("jamie@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "jamie@example.com", result.Email)

	claims, err := utils.ParseToken(result.Token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "Jamie Doe", claims.FullName)
	require.Equal(t, entity.RoleCustomer, claims.Role)

	ttl := time.Until(claims.ExpiresAt.Time)
	require.InDelta(t, utils.TokenTTL.Seconds(), ttl.Seconds(), 60,
		"token must expire 7 days after issuance")
}

func TestRegisterDuplicateUsernameCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Register("Jamie@Example.com", "hunter22", "Jamie", "")
	require.NoError(t, err)

	_, err = svc.Register("jamie@example.COM", "other-pass", "Imposter", "")
	require.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestRegisterRoleAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	admin, err := svc.Register("boss@example.com", "hunter22", "Boss", entity.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, entity.RoleAdmin, admin.Role)

	// any role string other than admin collapses to customer
	sneaky, err := svc.Register("sneaky@example.com", "hunter22", "Sneaky", "superuser")
	require.NoError(t, err)
	require.Equal(t, entity.RoleCustomer, sneaky.Role)
}

func TestRegisterBootstrapsRoles(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	var before int64
	require.NoError(t, db.Model(&entity.Role{}).Count(&before).Error)
	require.Zero(t, before)

	_, err := svc.Register("first@example.com", "hunter22", "First", "")
	require.NoError(t, err)

	var names []string
	require.NoError(t, db.Model(&entity.Role{}).Order("name").Pluck("name", &names).Error)
	require.Equal(t, []string{entity.RoleAdmin, entity.RoleCustomer}, names)
}

func TestLoginFailureShapeDoesNotLeak(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Register("jamie@example.com", "hunter22", "Jamie", "")
	require.NoError(t, err)

	_, unknownUser := svc.Login("nobody@example.com", "whatever")
	_, wrongPassword := svc.Login("jamie@example.com", "not-the-password")

	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.Equal(t, unknownUser.Error(), wrongPassword.Error(),
		"responses must not reveal whether the username exists")
}
