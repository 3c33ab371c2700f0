package handler

import (
	"github.com/gofiber/fiber/v2"

	"sdgportal/internal/kv"
	"sdgportal/internal/service"
)

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the service layer.
func RegisterRoutes(
	app *fiber.App,
	store kv.Store,
	docSvc service.DocumentService,
	adminSvc service.AdminService,
	contactSvc service.ContactService,
	siteSvc service.SiteService,
) {
	app.Get("/health", HealthCheck(store))
	app.Get("/healthz", LivenessProbe())

	app.Get("/documents", ListDocuments(docSvc))
	app.Post("/documents", CreateDocument(docSvc))
	app.Get("/documents/:id", GetDocument(docSvc))
	app.Patch("/documents/:id", UpdateDocument(docSvc))
	app.Delete("/documents/:id", DeleteDocument(docSvc))
	app.Get("/documents/:id/download", DownloadDocument(docSvc))

	app.Get("/statistics", DocumentStatistics(docSvc))
	app.Post("/backup", BackupDocuments(docSvc))
	app.Post("/restore", RestoreDocuments(docSvc))
	app.Get("/export", ExportDocuments(docSvc))
	app.Post("/import", ImportDocuments(docSvc))

	app.Post("/admin/login", AdminLogin(adminSvc))
	app.Post("/admin/logout", AdminLogout(adminSvc))
	app.Get("/admin/session", AdminSession(adminSvc))

	app.Post("/contact", SubmitContact(contactSvc))
	app.Get("/contact", ListContacts(contactSvc))

	app.Get("/events", ListEvents(siteSvc))
	app.Get("/active-page", ActivePage(siteSvc))
	app.Put("/active-page", SetActivePage(siteSvc))
}
