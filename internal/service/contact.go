package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"sdgportal/internal/model"
	"sdgportal/internal/repository"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
)

// ContactDraft is one contact-form submission before it is stamped.
type ContactDraft struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	OriginSchool string `json:"originSchool"`
	Facebook     string `json:"facebook"`
}

// ContactService persists contact-form submissions into the inbox key.
type ContactService interface {
	// Submit validates and stores a submission, newest first.
	Submit(ctx context.Context, draft ContactDraft) (*model.ContactMessage, error)

	// List returns every stored submission, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)
}

type contactService struct {
	repo  repository.ContactRepository
	clock Clock
	mu    sync.Mutex
}

// NewContactService constructs the contact inbox service.
func NewContactService(repo repository.ContactRepository, clock Clock) ContactService {
	return &contactService{repo: repo, clock: clock}
}

func (s *contactService) Submit(ctx context.Context, draft ContactDraft) (*model.ContactMessage, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(draft.Email) == "" {
		return nil, ErrEmailRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, err := s.repo.LoadMessages(ctx)
	if err != nil {
		return nil, err
	}

	msg := model.ContactMessage{
		ID:           uuid.New().String(),
		Name:         draft.Name,
		Email:        draft.Email,
		Phone:        draft.Phone,
		Address:      draft.Address,
		OriginSchool: draft.OriginSchool,
		Facebook:     draft.Facebook,
		SubmittedAt:  s.clock.Now().UTC(),
	}

	msgs = append([]model.ContactMessage{msg}, msgs...)
	if err := s.repo.SaveMessages(ctx, msgs); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *contactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	return s.repo.LoadMessages(ctx)
}
