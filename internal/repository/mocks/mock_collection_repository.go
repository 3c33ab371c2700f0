package mocks

import (
	"context"

	"sdgportal/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) Load(ctx context.Context) (*model.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Collection), args.Error(1)
}

func (m *MockCollectionRepository) Save(ctx context.Context, coll *model.Collection) error {
	args := m.Called(ctx, coll)
	return args.Error(0)
}

func (m *MockCollectionRepository) LoadBackup(ctx context.Context) (*model.Backup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Backup), args.Error(1)
}

func (m *MockCollectionRepository) SaveBackup(ctx context.Context, b *model.Backup) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockCollectionRepository) GetPreference(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCollectionRepository) SetPreference(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) LoadMessages(ctx context.Context) ([]model.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactMessage), args.Error(1)
}

func (m *MockContactRepository) SaveMessages(ctx context.Context, msgs []model.ContactMessage) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}
