package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridehub/internal/domain/models"
	"ridehub/internal/store"
)

func newAuthService(t *testing.T) (AuthService, *store.Store) {
	t.Helper()
	gw, st, logger := newTestStack(t)
	svc := NewAuthService(gw, st, AuthConfig{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}, logger)
	return svc, st
}

func TestSignInDemoAccounts(t *testing.T) {
	tests := []struct {
		email string
		role  models.Role
	}{
		{"customer@example.com", models.RoleCustomer},
		{"driver@example.com", models.RoleDriver},
		{"owner@example.com", models.RoleOwner},
		{"admin@example.com", models.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			svc, st := newAuthService(t)

			resp, err := svc.SignIn(context.Background(), tt.email, "password")
			require.NoError(t, err)
			assert.Equal(t, tt.role, resp.User.Role)
			assert.NotEmpty(t, resp.Token)

			user, ok := st.Auth.User()
			require.True(t, ok)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, store.StatusSucceeded, st.Auth.Status())
		})
	}
}

func TestSignInWrongPassword(t *testing.T) {
	svc, st := newAuthService(t)

	_, err := svc.SignIn(context.Background(), "customer@example.com", "hunter2")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)

	assert.Equal(t, store.StatusFailed, st.Auth.Status())
	assert.Equal(t, models.ErrInvalidCredentials.Error(), st.Auth.Err())
	_, ok := st.Auth.User()
	assert.False(t, ok)
}

func TestSignInUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.SignIn(context.Background(), "nobody@example.com", "password")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestTokenClaims(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.SignIn(context.Background(), "driver@example.com", "password")
	require.NoError(t, err)

	parsed, err := jwt.Parse(resp.Token, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "2", claims["user_id"])
	assert.Equal(t, "driver", claims["role"])
	assert.Equal(t, "ridehub", claims["iss"])
}

func TestSignOutClearsEverything(t *testing.T) {
	gw, st, logger := newTestStack(t)
	svc := NewAuthService(gw, st, AuthConfig{JWTSecret: "test-secret", JWTExpiry: time.Hour}, logger)

	_, err := svc.SignIn(context.Background(), "customer@example.com", "password")
	require.NoError(t, err)
	st.Trips.CommitList([]models.Trip{{ID: "1"}})

	require.NoError(t, svc.SignOut(context.Background()))

	_, ok := st.Auth.User()
	assert.False(t, ok)
	assert.Empty(t, st.Auth.Token())
	assert.Empty(t, st.Trips.List())

	_, err = svc.Profile(context.Background())
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
}

func TestProfileReturnsSignedInIdentity(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.SignIn(context.Background(), "owner@example.com", "password")
	require.NoError(t, err)

	user, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3", user.ID)
	assert.Equal(t, models.RoleOwner, user.Role)
}

func TestSessionSurvivesRestart(t *testing.T) {
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	cfg := AuthConfig{JWTSecret: "test-secret", JWTExpiry: time.Hour, SessionFile: sessionFile}

	gw, st, logger := newTestStack(t)
	svc := NewAuthService(gw, st, cfg, logger)
	_, err := svc.SignIn(context.Background(), "admin@example.com", "password")
	require.NoError(t, err)

	// A fresh store hydrated from the same file sees the same session.
	restarted := store.New()
	require.NoError(t, restarted.LoadAuth(sessionFile))
	restartedSvc := NewAuthService(gw, restarted, cfg, logger)

	user, err := restartedSvc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}
