package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdgportal/internal/config"
	"sdgportal/internal/kv"
	"sdgportal/internal/repository/kvstore"
)

func newAdminService() AdminService {
	repo := kvstore.NewCollectionKV(kv.NewMemoryStore())
	return NewAdminService(repo, config.AdminConfig{Username: "admin", Password: "sdg2024"})
}

func TestAdminService_LoginLogout(t *testing.T) {
	ctx := context.Background()
	svc := newAdminService()

	active, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, svc.Login(ctx, "admin", "sdg2024"))

	active, err = svc.Session(ctx)
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, svc.Logout(ctx))

	active, err = svc.Session(ctx)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestAdminService_RejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newAdminService()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "nope"},
		{name: "wrong username", username: "root", password: "sdg2024"},
		{name: "empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Login(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			active, err := svc.Session(ctx)
			require.NoError(t, err)
			assert.False(t, active, "failed login must not open a session")
		})
	}
}

func TestAdminService_LogoutWithoutSession(t *testing.T) {
	svc := newAdminService()
	assert.NoError(t, svc.Logout(context.Background()))
}
