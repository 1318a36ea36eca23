package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadsync/faculty-portal-api/internal/models"
	"github.com/acadsync/faculty-portal-api/internal/store"
	appErrors "github.com/acadsync/faculty-portal-api/pkg/errors"
)

func newTestAuthService(t *testing.T, st *store.TimetableStore) *AuthService {
	t.Helper()
	svc, err := NewAuthService(st, nil, nil, AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		Secret:        "test-secret",
		Expiration:    time.Hour,
		Issuer:        "faculty-portal",
	})
	require.NoError(t, err)
	return svc
}

func TestAdminLogin(t *testing.T) {
	svc := newTestAuthService(t, store.New())

	resp, err := svc.Login(models.LoginRequest{Email: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.Equal(t, "admin", resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, store.New())

	_, err := svc.Login(models.LoginRequest{Email: "admin", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestLoginValidation(t *testing.T) {
	svc := newTestAuthService(t, store.New())

	_, err := svc.Login(models.LoginRequest{Email: "admin"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestFacultyLoginUsesDerivedCredentials(t *testing.T) {
	st := store.New()
	st.ReplaceAll([]models.Faculty{
		{
			ID:       "faculty-1",
			Name:     "Mrs. R. Pallavi Reddy",
			Email:    "mrs..r..pallavi.reddy@faculty.edu",
			Password: "reddy",
		},
	}, nil)
	svc := newTestAuthService(t, st)

	resp, err := svc.Login(models.LoginRequest{Email: "mrs..r..pallavi.reddy@faculty.edu", Password: "reddy"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleFaculty, resp.User.Role)
	assert.Equal(t, "faculty-1", resp.User.ID)
	assert.Equal(t, "Mrs. R. Pallavi Reddy", resp.User.Name)

	_, err = svc.Login(models.LoginRequest{Email: "mrs..r..pallavi.reddy@faculty.edu", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestFacultyLoginBeforeIngest(t *testing.T) {
	svc := newTestAuthService(t, store.New())

	_, err := svc.Login(models.LoginRequest{Email: "someone@faculty.edu", Password: "someone"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestValidateTokenRoundtrip(t *testing.T) {
	svc := newTestAuthService(t, store.New())

	resp, err := svc.Login(models.LoginRequest{Email: "admin", Password: "admin123"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "faculty-portal", claims.Issuer)
}

func TestValidateTokenRejectsForgedToken(t *testing.T) {
	svc := newTestAuthService(t, store.New())

	other, err := NewAuthService(store.New(), nil, nil, AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		Secret:        "other-secret",
		Expiration:    time.Hour,
		Issuer:        "faculty-portal",
	})
	require.NoError(t, err)

	resp, err := other.Login(models.LoginRequest{Email: "admin", Password: "admin123"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.AccessToken)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)

	_, err = svc.ValidateToken("not-a-token")
	require.Error(t, err)
}
