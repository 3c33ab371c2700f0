package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sdgportal/internal/model"
	"sdgportal/internal/repository"
	"sdgportal/internal/service"
)

// parseID parses the :id route parameter. Document ids are positive integers.
func parseID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// splitTags turns a comma-separated form value into a tag slice.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// writeDocumentError translates service errors into standardized responses.
func writeDocumentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrFileNameRequired):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ListDocuments serves the collection. ?q= runs a text search and
// ?category= filters by exact category; q wins when both are present.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			docs []model.Document
			err  error
		)
		switch {
		case c.Query("q") != "":
			docs, err = svc.Search(c.UserContext(), c.Query("q"))
		case c.Query("category") != "" && c.Query("category") != "all":
			docs, err = svc.FilterByCategory(c.UserContext(), c.Query("category"))
		default:
			docs, err = svc.List(c.UserContext())
		}
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(docs)
	}
}

// CreateDocument accepts either a multipart upload (field name: file, plus
// title/description/category/tags form fields) or a metadata-only JSON draft.
func CreateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			// No file part: treat the body as a metadata-only draft.
			var draft model.DocumentDraft
			if err := c.BodyParser(&draft); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
			}
			doc, err := svc.Add(c.UserContext(), draft)
			if err != nil {
				return writeDocumentError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(doc)
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		in := service.UploadInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Category:    c.FormValue("category"),
			Tags:        splitTags(c.FormValue("tags")),
			FileName:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
		}
		doc, err := svc.Upload(c.UserContext(), f, in)
		if err != nil {
			return writeDocumentError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument returns a single document by id.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeDocumentError(c, err)
		}
		return c.JSON(doc)
	}
}

// UpdateDocument applies a partial metadata update to a document.
func UpdateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var patch model.DocumentPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		doc, err := svc.Update(c.UserContext(), id, patch)
		if err != nil {
			return writeDocumentError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes a document. Deleting an absent id is a no-op.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeDocumentError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DownloadDocument returns a short-lived presigned URL for the stored file.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.DownloadURL(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNoFile) {
				return writeError(c, fiber.StatusNotFound, "NO_FILE", "document has no stored file")
			}
			return writeDocumentError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// DocumentStatistics returns collection-level aggregates.
func DocumentStatistics(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Statistics(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(stats)
	}
}

// BackupDocuments snapshots the collection into the backup slot.
func BackupDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, err := svc.Backup(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

// RestoreDocuments replaces the collection with the stored backup.
func RestoreDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Restore(c.UserContext()); err != nil {
			if errors.Is(err, repository.ErrNoBackup) {
				return writeError(c, fiber.StatusNotFound, "NO_BACKUP", "no backup available")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ExportDocuments serves the collection as a downloadable JSON file.
func ExportDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.Export(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="sdg-documents.json"`)
		return c.Type("json").Send(data)
	}
}

// ImportDocuments validates the request body and replaces the collection.
func ImportDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Import(c.UserContext(), c.Body()); err != nil {
			if errors.Is(err, service.ErrInvalidImport) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_IMPORT", "import payload is not a valid collection")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
