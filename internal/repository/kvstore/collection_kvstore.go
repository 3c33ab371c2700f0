package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"sdgportal/internal/kv"
	"sdgportal/internal/model"
	"sdgportal/internal/repository"
)

// CollectionKV implements the repository interfaces over the key-value
// backing store. It is a thin codec layer: JSON in, JSON out, whole values
// only. No business logic here.
type CollectionKV struct {
	store kv.Store
}

// NewCollectionKV creates a repository over the given backing store.
func NewCollectionKV(store kv.Store) *CollectionKV {
	return &CollectionKV{store: store}
}

var (
	_ repository.CollectionRepository = (*CollectionKV)(nil)
	_ repository.ContactRepository    = (*CollectionKV)(nil)
)

// Load decodes the collection under the primary key. Each call produces a
// fresh value; callers never share state through the repository.
func (r *CollectionKV) Load(ctx context.Context) (*model.Collection, error) {
	raw, ok, err := r.store.Get(ctx, repository.PrimaryKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", repository.PrimaryKey, err)
	}
	if !ok {
		return nil, repository.ErrNoCollection
	}

	var coll model.Collection
	if err := json.Unmarshal([]byte(raw), &coll); err != nil {
		return nil, fmt.Errorf("decode %s: %w", repository.PrimaryKey, err)
	}
	return &coll, nil
}

func (r *CollectionKV) Save(ctx context.Context, coll *model.Collection) error {
	raw, err := json.Marshal(coll)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := r.store.Set(ctx, repository.PrimaryKey, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", repository.PrimaryKey, err)
	}
	return nil
}

func (r *CollectionKV) LoadBackup(ctx context.Context) (*model.Backup, error) {
	raw, ok, err := r.store.Get(ctx, repository.BackupKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", repository.BackupKey, err)
	}
	if !ok {
		return nil, repository.ErrNoBackup
	}

	var b model.Backup
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, fmt.Errorf("decode %s: %w", repository.BackupKey, err)
	}
	return &b, nil
}

func (r *CollectionKV) SaveBackup(ctx context.Context, b *model.Backup) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := r.store.Set(ctx, repository.BackupKey, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", repository.BackupKey, err)
	}
	return nil
}

// GetPreference reads a plain-string auxiliary key; absence yields "".
func (r *CollectionKV) GetPreference(ctx context.Context, key string) (string, error) {
	v, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return "", nil
	}
	return v, nil
}

func (r *CollectionKV) SetPreference(ctx context.Context, key, value string) error {
	if value == "" {
		if err := r.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		return nil
	}
	if err := r.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (r *CollectionKV) LoadMessages(ctx context.Context) ([]model.ContactMessage, error) {
	raw, ok, err := r.store.Get(ctx, repository.ContactKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", repository.ContactKey, err)
	}
	if !ok {
		return []model.ContactMessage{}, nil
	}

	var msgs []model.ContactMessage
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", repository.ContactKey, err)
	}
	return msgs, nil
}

func (r *CollectionKV) SaveMessages(ctx context.Context, msgs []model.ContactMessage) error {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("encode contact messages: %w", err)
	}
	if err := r.store.Set(ctx, repository.ContactKey, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", repository.ContactKey, err)
	}
	return nil
}
