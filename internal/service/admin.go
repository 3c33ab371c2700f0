package service

import (
	"context"
	"errors"

	"sdgportal/internal/config"
	"sdgportal/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AdminService is the mock admin workflow: one configured credential pair
// and a single session flag in the backing store. This is deliberately not
// real authentication; it gates the manage surface of a promotional site.
type AdminService interface {
	// Login checks the credential pair and sets the session flag.
	Login(ctx context.Context, username, password string) error

	// Logout clears the session flag. Always succeeds.
	Logout(ctx context.Context) error

	// Session reports whether an admin session is active.
	Session(ctx context.Context) (bool, error)
}

type adminService struct {
	repo  repository.CollectionRepository
	creds config.AdminConfig
}

// NewAdminService constructs the admin workflow over the preference keys.
func NewAdminService(repo repository.CollectionRepository, creds config.AdminConfig) AdminService {
	return &adminService{repo: repo, creds: creds}
}

func (s *adminService) Login(ctx context.Context, username, password string) error {
	if username != s.creds.Username || password != s.creds.Password {
		return ErrInvalidCredentials
	}
	return s.repo.SetPreference(ctx, repository.AdminSessionKey, "true")
}

func (s *adminService) Logout(ctx context.Context) error {
	return s.repo.SetPreference(ctx, repository.AdminSessionKey, "")
}

func (s *adminService) Session(ctx context.Context) (bool, error) {
	v, err := s.repo.GetPreference(ctx, repository.AdminSessionKey)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}
