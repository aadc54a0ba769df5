package handlers

import (
	"strconv"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/models"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/services"
	"github.com/gofiber/fiber/v2"
)

type EntryHandler struct {
	orchestrator *services.EntryOrchestrator
	entries      *services.EntryService
}

func NewEntryHandler(orchestrator *services.EntryOrchestrator, entries *services.EntryService) *EntryHandler {
	return &EntryHandler{orchestrator: orchestrator, entries: entries}
}

// entryID parses :id. Anything that is not a positive integer cannot name an
// entry, so it is reported as not found.
func entryID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func caller(c *fiber.Ctx) (*models.User, error) {
	user, ok := middleware.GetUser(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	return user, nil
}

func (h *EntryHandler) Create(c *fiber.Ctx) error {
	user, err := caller(c)
	if err != nil {
		return err
	}

	var req dto.EntryRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	entry, err := h.orchestrator.CreateEntry(c.UserContext(), user, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewEntryResponse(entry))
}

func (h *EntryHandler) List(c *fiber.Ctx) error {
	user, err := caller(c)
	if err != nil {
		return err
	}

	entries, err := h.entries.List(c.UserContext(), user)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.NewEntryList(entries))
}

func (h *EntryHandler) Get(c *fiber.Ctx) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	id, ok := entryID(c)
	if !ok {
		return respondError(c, services.ErrEntryNotFound)
	}

	entry, err := h.entries.Get(c.UserContext(), user, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.NewEntryResponse(entry))
}

func (h *EntryHandler) Update(c *fiber.Ctx) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	id, ok := entryID(c)
	if !ok {
		return respondError(c, services.ErrEntryNotFound)
	}

	var req dto.EntryRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	entry, err := h.entries.Update(c.UserContext(), user, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.NewEntryResponse(entry))
}

func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	id, ok := entryID(c)
	if !ok {
		return respondError(c, services.ErrEntryNotFound)
	}

	if err := h.entries.Delete(c.UserContext(), user, id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
