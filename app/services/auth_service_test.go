package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josbet/floreria/app/repositories"
	"github.com/josbet/floreria/app/services"
)

func newAuthService(t *testing.T) (*services.AuthService, *repositories.UserRepository) {
	t.Helper()
	users := repositories.NewUserRepository(newTestDB(t))
	return services.NewAuthService(users), users
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, users := newAuthService(t)

	user, err := svc.Register("ana", "Ana@X.com", "pw123", "pw123")
	require.NoError(t, err)

	assert.Equal(t, "ana", user.Username)
	assert.Equal(t, "ana@x.com", user.Email, "email stored lower-cased")
	assert.NotEqual(t, "pw123", user.PasswordHash)
	assert.True(t, user.CheckPassword("pw123"))
	assert.False(t, user.IsAdmin)

	stored, err := users.FindByUsername("ana")
	require.NoError(t, err)
	assert.True(t, stored.CheckPassword("pw123"))
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("", "ana@x.com", "pw123", "pw123")
	assert.ErrorIs(t, err, services.ErrMissingFields)

	_, err = svc.Register("ana", "   ", "pw123", "pw123")
	assert.ErrorIs(t, err, services.ErrMissingFields)

	_, err = svc.Register("ana", "ana@x.com", "", "")
	assert.ErrorIs(t, err, services.ErrMissingFields)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("ana", "ana@x.com", "pw123", "pw124")
	assert.ErrorIs(t, err, services.ErrPasswordMismatch)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("ana", "ana@x.com", "pw123", "pw123")
	require.NoError(t, err)

	// Same username, different email.
	_, err = svc.Register("ana", "other@x.com", "pw123", "pw123")
	assert.ErrorIs(t, err, services.ErrDuplicate)

	// Same email, different username and case.
	_, err = svc.Register("bea", "ANA@X.COM", "pw123", "pw123")
	assert.ErrorIs(t, err, services.ErrDuplicate)
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	_, err := svc.Register("ana", "ana@x.com", "pw123", "pw123")
	require.NoError(t, err)

	user, err := svc.Login("ana", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)

	user, err = svc.Login("ana@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)
	_, err := svc.Register("ana", "ana@x.com", "pw123", "pw123")
	require.NoError(t, err)

	_, wrongPassword := svc.Login("ana", "nope")
	_, unknownUser := svc.Login("nobody", "pw123")

	assert.ErrorIs(t, wrongPassword, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser, "both failures must look the same to callers")
}

func TestRegisterNeverPersistsPlaintext(t *testing.T) {
	svc, users := newAuthService(t)

	_, err := svc.Register("ana", "ana@x.com", "pw123", "pw123")
	require.NoError(t, err)

	all, err := users.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotContains(t, all[0].PasswordHash, "pw123")
}
