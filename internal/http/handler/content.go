package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sdgportal/internal/service"
)

// SubmitContact validates and stores one contact-form submission.
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var draft service.ContactDraft
		if err := c.BodyParser(&draft); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		msg, err := svc.Submit(c.UserContext(), draft)
		if err != nil {
			if errors.Is(err, service.ErrNameRequired) || errors.Is(err, service.ErrEmailRequired) {
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(msg)
	}
}

// ListContacts returns the stored submissions, newest first.
func ListContacts(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msgs, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(msgs)
	}
}

// ListEvents serves the news and events feed.
func ListEvents(svc service.SiteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := svc.Events(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(events)
	}
}

// ActivePage returns the persisted navigation selection.
func ActivePage(svc service.SiteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.ActivePage(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"page": page})
	}
}

// SetActivePage persists the navigation selection.
func SetActivePage(svc service.SiteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Page string `json:"page"`
		}
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		if err := svc.SetActivePage(c.UserContext(), req.Page); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
