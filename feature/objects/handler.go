package objects

import (
	"bytes"
	"errors"

	"filestore/core/logger"
	"filestore/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for objects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
	app.Get("/urls/*", h.HandleURL)

	group := app.Group("/objects")
	group.Put("/*", h.HandleUpload)
	// Head must come before Get: fiber's Get also answers HEAD and would
	// shadow the cheap stat-based check with a full download.
	group.Head("/*", h.HandleExists)
	group.Get("/*", h.HandleDownload)
	group.Delete("/*", h.HandleDelete)
}

// objectName extracts the wildcard object name from the path.
func objectName(c *fiber.Ctx) (string, bool) {
	name := c.Params("*")
	return name, name != ""
}

// HandleUpload stores the request body under the path name and returns the
// stored name and its public URL. Uploading over an existing name overwrites.
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	name, ok := objectName(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing object name"})
	}
	l := logger.WithRayID(h.service.logger, c)

	body := c.Body()
	stored, err := h.service.Upload(c.Context(), name, bytes.NewReader(body), int64(len(body)), c.Get(fiber.HeaderContentType))
	if err != nil {
		l.Error("Upload failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Object stored", zap.String("name", stored), zap.Int("size", len(body)))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"name": stored,
		"url":  h.service.URL(stored),
	})
}

// HandleDownload streams the object content back to the client.
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	name, ok := objectName(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing object name"})
	}
	l := logger.WithRayID(h.service.logger, c)

	file, err := h.service.Download(c.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "object not found"})
		}
		l.Error("Download failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, file.ContentType())
	return c.SendStream(file, int(file.Size()))
}

// HandleExists answers HEAD requests with 200 or 404 and no body.
func (h *Handler) HandleExists(c *fiber.Ctx) error {
	name, ok := objectName(c)
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	l := logger.WithRayID(h.service.logger, c)

	exists, err := h.service.Exists(c.Context(), name)
	if err != nil {
		// The store, not this server, failed to answer.
		l.Error("Existence check failed", zap.String("name", name), zap.Error(err))
		return c.SendStatus(fiber.StatusBadGateway)
	}
	if !exists {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusOK)
}

// HandleDelete removes the object. Deleting a missing object succeeds.
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	name, ok := objectName(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing object name"})
	}
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), name); err != nil {
		l.Error("Delete failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleURL returns the object's public URL. No store call is made and no
// existence check is performed.
func (h *Handler) HandleURL(c *fiber.Ctx) error {
	name, ok := objectName(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing object name"})
	}
	return c.JSON(fiber.Map{
		"name": name,
		"url":  h.service.URL(name),
	})
}

// HandleHealth reports whether the configured bucket is reachable.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	if err := h.service.Health(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
