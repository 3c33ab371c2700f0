package repository

import (
	"context"
	"errors"

	"sdgportal/internal/model"
)

// Backing-store keys. PrimaryKey and BackupKey hold JSON-encoded aggregates;
// the preference keys hold plain strings.
const (
	PrimaryKey      = "sdg_documents"
	BackupKey       = "sdg_documents_backup"
	ContactKey      = "sdg_contact_messages"
	ActivePageKey   = "sdg_active_page"
	AdminSessionKey = "sdg_admin_session"
)

var (
	// ErrNoCollection is returned when the primary key holds nothing yet.
	ErrNoCollection = errors.New("collection not initialized")
	// ErrNoBackup is returned when no backup snapshot exists.
	ErrNoBackup = errors.New("no backup present")
)

// CollectionRepository owns every read and write of the persisted document
// aggregate. The whole collection is the unit of serialization: Load returns
// a freshly decoded copy, Save rewrites the entire value under its key.
type CollectionRepository interface {
	// Load returns the current collection, or ErrNoCollection if the
	// primary key is absent. Malformed stored JSON is a propagated error.
	Load(ctx context.Context) (*model.Collection, error)

	// Save rewrites the whole collection under the primary key.
	Save(ctx context.Context, coll *model.Collection) error

	// LoadBackup returns the backup snapshot, or ErrNoBackup.
	LoadBackup(ctx context.Context) (*model.Backup, error)

	// SaveBackup overwrites the single backup slot unconditionally.
	SaveBackup(ctx context.Context, b *model.Backup) error

	// GetPreference returns the plain-string value under key, or "" when
	// the key is absent.
	GetPreference(ctx context.Context, key string) (string, error)

	// SetPreference stores a plain-string value. An empty value deletes
	// the key.
	SetPreference(ctx context.Context, key, value string) error
}

// ContactRepository persists the contact-form inbox.
type ContactRepository interface {
	// LoadMessages returns all submissions, newest first. An absent key
	// yields an empty slice.
	LoadMessages(ctx context.Context) ([]model.ContactMessage, error)

	// SaveMessages rewrites the whole inbox.
	SaveMessages(ctx context.Context, msgs []model.ContactMessage) error
}
