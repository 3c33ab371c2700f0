package model

import "time"

// PlaceholderFileURL marks seed documents that have no stored object behind
// them. Uploaded documents carry an object storage key instead.
const PlaceholderFileURL = "#"

// Document represents one SDG showcase resource record.
// This is a pure domain model with no persistence-specific dependencies or
// tags beyond the JSON field names of the persisted collection layout.
type Document struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	FileName     string    `json:"fileName"`
	FileSize     string    `json:"fileSize"` // decimal megabytes, e.g. "2.40"
	FileURL      string    `json:"fileUrl"`
	UploadDate   string    `json:"uploadDate"` // display date, e.g. "January 2, 2006"
	LastModified time.Time `json:"lastModified"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
}

// Clone returns a detached copy of the document. Callers must never receive
// live references into store-owned state.
func (d Document) Clone() Document {
	out := d
	if d.Tags != nil {
		// make+copy keeps an empty slice empty instead of collapsing it to nil.
		out.Tags = make([]string, len(d.Tags))
		copy(out.Tags, d.Tags)
	}
	return out
}

// Collection is the persisted aggregate: every document in insertion order
// (newest first), the category enumeration, and the next identifier. The
// whole aggregate is the unit of serialization; there are no partial writes.
type Collection struct {
	Documents  []Document `json:"documents"`
	Categories []string   `json:"categories"`
	NextID     int        `json:"nextId"`
}

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	out := Collection{NextID: c.NextID}
	if c.Documents != nil {
		out.Documents = make([]Document, len(c.Documents))
		for i, d := range c.Documents {
			out.Documents[i] = d.Clone()
		}
	}
	if c.Categories != nil {
		out.Categories = make([]string, len(c.Categories))
		copy(out.Categories, c.Categories)
	}
	return out
}

// Backup is a verbatim snapshot of the collection stamped with its creation
// time. One slot only; taking a new backup overwrites the previous one.
type Backup struct {
	Collection
	BackupDate time.Time `json:"backupDate"`
}

// Statistics is derived from the current collection and never persisted.
type Statistics struct {
	TotalDocuments int            `json:"totalDocuments"`
	TotalSize      string         `json:"totalSize"` // megabytes, two decimals
	ByCategory     map[string]int `json:"byCategory"`
	LastUpdated    time.Time      `json:"lastUpdated"`
}

// DocumentDraft is the caller-supplied part of a new document. The store
// assigns ID, UploadDate and LastModified.
type DocumentDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FileName    string   `json:"fileName"`
	FileSize    string   `json:"fileSize"`
	FileURL     string   `json:"fileUrl"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// DocumentPatch is a partial update. Nil fields leave the stored value
// unchanged; LastModified is always refreshed.
type DocumentPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	FileName    *string   `json:"fileName"`
	FileSize    *string   `json:"fileSize"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
}
