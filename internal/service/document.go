package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"sdgportal/internal/model"
	"sdgportal/internal/repository"
	"sdgportal/internal/storage"
)

var (
	ErrNotFound         = errors.New("document not found")
	ErrReaderNil        = errors.New("reader is nil")
	ErrTitleRequired    = errors.New("title is required")
	ErrFileNameRequired = errors.New("file name is required")
	ErrNoFile           = errors.New("document has no stored file")
	ErrInvalidImport    = errors.New("import payload is not a valid collection")
)

const (
	// uploadDateFormat matches the display dates the site renders.
	uploadDateFormat = "January 2, 2006"
	// objectPrefix namespaces uploaded files inside the bucket.
	objectPrefix = "sdg"
	// presignExpiry bounds download links for stored objects.
	presignExpiry = 15 * time.Minute
)

// UploadInput carries the metadata accompanying an uploaded file.
type UploadInput struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	FileName    string
	ContentType string
	Size        int64
}

// DocumentService is the document store facade: every read and mutation of
// the SDG document collection goes through it. All returned values are
// detached copies.
type DocumentService interface {
	// Initialize writes the seed collection if none exists yet. Idempotent;
	// subsequent calls are no-ops.
	Initialize(ctx context.Context) error

	// List returns every document, newest first.
	List(ctx context.Context) ([]model.Document, error)

	// Get returns a single document by id, or ErrNotFound.
	Get(ctx context.Context, id int) (*model.Document, error)

	// Add finalizes a draft: assigns the next counter id, stamps dates,
	// prepends it to the collection, and persists. The returned document's
	// id is unique and greater than all prior ids.
	Add(ctx context.Context, draft model.DocumentDraft) (*model.Document, error)

	// Upload streams file content to object storage, then Adds the
	// metadata record. The object is rolled back if the metadata save fails.
	Upload(ctx context.Context, r io.Reader, in UploadInput) (*model.Document, error)

	// Update shallow-merges the patch onto the stored document and
	// refreshes LastModified. Returns ErrNotFound for an unknown id.
	Update(ctx context.Context, id int, patch model.DocumentPatch) (*model.Document, error)

	// Delete removes the document and its stored object, if any.
	// Deleting an unknown id succeeds without changing anything.
	Delete(ctx context.Context, id int) error

	// Search returns documents whose title, description, or any tag
	// contains the query, case-insensitively, in original order.
	Search(ctx context.Context, query string) ([]model.Document, error)

	// FilterByCategory returns documents whose category matches exactly.
	FilterByCategory(ctx context.Context, category string) ([]model.Document, error)

	// Backup snapshots the collection into the single backup slot.
	Backup(ctx context.Context) (*model.Backup, error)

	// Restore overwrites the live collection with the backup snapshot.
	// Returns repository.ErrNoBackup when no snapshot exists.
	Restore(ctx context.Context) error

	// Statistics derives counts and total size from the live collection.
	Statistics(ctx context.Context) (*model.Statistics, error)

	// Export renders the collection as a downloadable JSON payload.
	Export(ctx context.Context) ([]byte, error)

	// Import validates an exported payload and replaces the live
	// collection with it.
	Import(ctx context.Context, data []byte) error

	// DownloadURL returns a presigned link for the document's stored
	// object, or ErrNoFile for placeholder seed entries.
	DownloadURL(ctx context.Context, id int) (string, error)
}

// documentService is the concrete facade. The mutex serializes every
// read-modify-write cycle so concurrent API requests cannot lose updates;
// the process is assumed to be the store's only writer.
type documentService struct {
	store storage.Storage
	repo  repository.CollectionRepository
	clock Clock
	mu    sync.Mutex
}

// NewDocumentService constructs the facade. It is built once at the
// composition root and injected into every consumer.
func NewDocumentService(store storage.Storage, repo repository.CollectionRepository, clock Clock) DocumentService {
	return &documentService{store: store, repo: repo, clock: clock}
}

func (s *documentService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.repo.Load(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNoCollection) {
		return err
	}
	return s.repo.Save(ctx, seedCollection())
}

func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return cloneDocuments(coll.Documents), nil
}

func (s *documentService) Get(ctx context.Context, id int) (*model.Document, error) {
	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range coll.Documents {
		if d.ID == id {
			out := d.Clone()
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *documentService) Add(ctx context.Context, draft model.DocumentDraft) (*model.Document, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	doc := model.Document{
		ID:           coll.NextID,
		Title:        draft.Title,
		Description:  draft.Description,
		FileName:     draft.FileName,
		FileSize:     draft.FileSize,
		FileURL:      draft.FileURL,
		UploadDate:   now.Format(uploadDateFormat),
		LastModified: now,
		Category:     normalizeCategory(draft.Category),
		Tags:         normalizeTags(draft.Tags),
	}
	if doc.FileURL == "" {
		doc.FileURL = model.PlaceholderFileURL
	}

	coll.NextID++
	// Newest first.
	coll.Documents = append([]model.Document{doc}, coll.Documents...)

	if err := s.repo.Save(ctx, coll); err != nil {
		return nil, err
	}

	out := doc.Clone()
	return &out, nil
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, in UploadInput) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	// Store content under a generated key; the original filename survives
	// only as metadata and the displayed FileName.
	ext := filepath.Ext(in.FileName)
	key := objectPrefix + "/" + uuid.New().String() + ext

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.FileName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc, err := s.Add(ctx, model.DocumentDraft{
		Title:       in.Title,
		Description: in.Description,
		FileName:    in.FileName,
		FileSize:    megabytes(objInfo.Size),
		FileURL:     objInfo.Key,
		Category:    in.Category,
		Tags:        in.Tags,
	})
	if err != nil {
		// Rollback: remove the object so storage holds no orphans.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("metadata save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("metadata save failed: %w", err)
	}
	return doc, nil
}

func (s *documentService) Update(ctx context.Context, id int, patch model.DocumentPatch) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, d := range coll.Documents {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	doc := &coll.Documents[idx]
	if patch.Title != nil {
		doc.Title = *patch.Title
	}
	if patch.Description != nil {
		doc.Description = *patch.Description
	}
	if patch.FileName != nil {
		doc.FileName = *patch.FileName
	}
	if patch.FileSize != nil {
		doc.FileSize = *patch.FileSize
	}
	if patch.Category != nil {
		doc.Category = normalizeCategory(*patch.Category)
	}
	if patch.Tags != nil {
		doc.Tags = normalizeTags(*patch.Tags)
	}
	doc.LastModified = s.clock.Now().UTC()

	if err := s.repo.Save(ctx, coll); err != nil {
		return nil, err
	}

	out := doc.Clone()
	return &out, nil
}

func (s *documentService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, d := range coll.Documents {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Removing a non-existent id is a successful no-op.
		return nil
	}

	// Delete the stored object first; if that fails, keep the record so
	// the storage reference is not lost.
	if key := coll.Documents[idx].FileURL; isObjectKey(key) {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete storage: %w", err)
		}
	}

	coll.Documents = append(coll.Documents[:idx], coll.Documents[idx+1:]...)
	return s.repo.Save(ctx, coll)
}

func (s *documentService) Search(ctx context.Context, query string) ([]model.Document, error) {
	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return cloneDocuments(coll.Documents), nil
	}

	matched := make([]model.Document, 0)
	for _, d := range coll.Documents {
		if matchesQuery(d, q) {
			matched = append(matched, d.Clone())
		}
	}
	return matched, nil
}

func (s *documentService) FilterByCategory(ctx context.Context, category string) ([]model.Document, error) {
	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Document, 0)
	for _, d := range coll.Documents {
		if d.Category == category {
			matched = append(matched, d.Clone())
		}
	}
	return matched, nil
}

func (s *documentService) Backup(ctx context.Context) (*model.Backup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	b := &model.Backup{
		Collection: coll.Clone(),
		BackupDate: s.clock.Now().UTC(),
	}
	if err := s.repo.SaveBackup(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *documentService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.repo.LoadBackup(ctx)
	if err != nil {
		return err
	}
	return s.repo.Save(ctx, &b.Collection)
}

func (s *documentService) Statistics(ctx context.Context) (*model.Statistics, error) {
	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	var totalMB float64
	byCategory := make(map[string]int)
	for _, d := range coll.Documents {
		// Unparsable sizes contribute zero to the sum.
		if mb, err := strconv.ParseFloat(d.FileSize, 64); err == nil {
			totalMB += mb
		}
		byCategory[d.Category]++
	}

	return &model.Statistics{
		TotalDocuments: len(coll.Documents),
		TotalSize:      fmt.Sprintf("%.2f", totalMB),
		ByCategory:     byCategory,
		LastUpdated:    s.clock.Now().UTC(),
	}, nil
}

func (s *documentService) Export(ctx context.Context) ([]byte, error) {
	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(coll, "", "  ")
}

func (s *documentService) Import(ctx context.Context, data []byte) error {
	var coll model.Collection
	if err := json.Unmarshal(data, &coll); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if err := validateCollection(&coll); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Save(ctx, &coll)
}

func (s *documentService) DownloadURL(ctx context.Context, id int) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !isObjectKey(doc.FileURL) {
		return "", ErrNoFile
	}
	return s.store.PresignGet(ctx, doc.FileURL, presignExpiry)
}

func validateDraft(draft model.DocumentDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(draft.FileName) == "" {
		return ErrFileNameRequired
	}
	return nil
}

// validateCollection guards the import path: ids must be unique and the
// counter must stay strictly above every existing id.
func validateCollection(coll *model.Collection) error {
	seen := make(map[int]struct{}, len(coll.Documents))
	for _, d := range coll.Documents {
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("%w: duplicate document id %d", ErrInvalidImport, d.ID)
		}
		seen[d.ID] = struct{}{}
		if d.ID >= coll.NextID {
			return fmt.Errorf("%w: nextId %d not greater than document id %d", ErrInvalidImport, coll.NextID, d.ID)
		}
	}
	if coll.NextID < 1 {
		return fmt.Errorf("%w: nextId must be positive", ErrInvalidImport)
	}
	if coll.Categories == nil {
		coll.Categories = append([]string(nil), seedCategories...)
	}
	for i := range coll.Documents {
		coll.Documents[i].Tags = normalizeTags(coll.Documents[i].Tags)
	}
	return nil
}

func matchesQuery(d model.Document, q string) bool {
	if strings.Contains(strings.ToLower(d.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Description), q) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// normalizeCategory keeps free-text categories but never persists an empty
// one; blank falls back to the first seed category.
func normalizeCategory(category string) string {
	c := strings.TrimSpace(category)
	if c == "" {
		return seedCategories[0]
	}
	return c
}

func normalizeTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

func cloneDocuments(docs []model.Document) []model.Document {
	out := make([]model.Document, len(docs))
	for i, d := range docs {
		out[i] = d.Clone()
	}
	return out
}

func isObjectKey(fileURL string) bool {
	return strings.HasPrefix(fileURL, objectPrefix+"/")
}

func megabytes(size int64) string {
	return fmt.Sprintf("%.2f", float64(size)/(1024*1024))
}
