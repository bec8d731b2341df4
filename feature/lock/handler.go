package lock

import (
	"errors"
	"regexp"

	"relic-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var tokenPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

// SaveRequest is the body of PUT /locks/{token}.
type SaveRequest struct {
	Save bool `json:"save"`
}

// Handler handles HTTP requests for locks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lock routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/locks")
	group.Get("/", h.HandleList)
	group.Get("/:token", h.HandleGet)
	group.Put("/:token", h.HandlePut)
	group.Delete("/:token", h.HandleDelete)
}

// HandleList returns every stored lock.
// @Summary List Locks
// @Description List every stored relic lock ordered by token.
// @Tags locks
// @Produce json
// @Success 200 {array} models.LockRecord "Locks"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /locks [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Lock listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(records)
}

// HandleGet returns the lock of one token.
// @Summary Get Lock
// @Tags locks
// @Produce json
// @Param token path string true "Relic token (16 hex digits)"
// @Success 200 {object} models.LockRecord "Lock"
// @Failure 400 {object} map[string]string "Invalid token"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /locks/{token} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	token := c.Params("token")
	if !tokenPattern.MatchString(token) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid token"})
	}

	record, err := h.service.Get(c.Context(), token)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Lock lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(record)
}

// HandlePut sets the save flag of one token.
// @Summary Set Lock
// @Description Create or update the lock of a relic token.
// @Tags locks
// @Accept json
// @Produce json
// @Param token path string true "Relic token (16 hex digits)"
// @Param body body SaveRequest true "Save flag"
// @Success 200 {object} models.LockRecord "Lock"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /locks/{token} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	token := c.Params("token")
	if !tokenPattern.MatchString(token) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid token"})
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	record, err := h.service.SetSave(c.Context(), token, req.Save)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Lock update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(record)
}

// HandleDelete removes the lock of one token.
// @Summary Delete Lock
// @Tags locks
// @Param token path string true "Relic token (16 hex digits)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid token"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /locks/{token} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	token := c.Params("token")
	if !tokenPattern.MatchString(token) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid token"})
	}

	err := h.service.Delete(c.Context(), token)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Lock delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
