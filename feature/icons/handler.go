package icons

import (
	"errors"
	"net/url"

	"relic-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IconStatus is one entry of GET /icons.
type IconStatus struct {
	Name   string `json:"name"`
	Loaded bool   `json:"loaded"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Handler handles HTTP requests for equip icons.
type Handler struct {
	catalogue *Catalogue
}

// NewHandler creates a new HTTP handler.
func NewHandler(catalogue *Catalogue) *Handler {
	return &Handler{catalogue: catalogue}
}

// RegisterRoutes registers the icon routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/icons")
	group.Get("/", h.HandleList)
	group.Get("/missing", h.HandleMissing)
	group.Get("/orphans", h.HandleOrphans)
	group.Delete("/orphans", h.HandleRemoveOrphans)
	group.Get("/:name", h.HandleGet)
	group.Put("/:name", h.HandleUpload)
}

// HandleList lists the catalogue and which icons are loaded.
// @Summary List Icons
// @Tags icons
// @Produce json
// @Success 200 {array} IconStatus "Icons"
// @Router /icons [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	out := make([]IconStatus, 0, len(CharacterNames))
	for _, name := range CharacterNames {
		status := IconStatus{Name: name}
		if img, ok := h.catalogue.Cached(name); ok {
			b := img.Bounds()
			status.Loaded = true
			status.Width, status.Height = b.Dx(), b.Dy()
		}
		out = append(out, status)
	}
	return c.JSON(out)
}

// HandleMissing lists catalogue names without an icon in storage.
// @Summary Missing Icons
// @Tags icons
// @Produce json
// @Success 200 {array} string "Names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /icons/missing [get]
func (h *Handler) HandleMissing(c *fiber.Ctx) error {
	missing, err := h.catalogue.Missing(c.Context())
	if err != nil {
		logger.WithRayID(h.catalogue.logger, c).Error("Icon listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if missing == nil {
		missing = []string{}
	}
	return c.JSON(missing)
}

// HandleOrphans lists stored objects that belong to no catalogue name.
// @Summary Orphan Icons
// @Tags icons
// @Produce json
// @Success 200 {array} string "Object keys"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /icons/orphans [get]
func (h *Handler) HandleOrphans(c *fiber.Ctx) error {
	orphans, err := h.catalogue.Orphans(c.Context())
	if err != nil {
		logger.WithRayID(h.catalogue.logger, c).Error("Icon listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if orphans == nil {
		orphans = []string{}
	}
	return c.JSON(orphans)
}

// HandleRemoveOrphans deletes stored objects that belong to no catalogue name.
// @Summary Remove Orphan Icons
// @Tags icons
// @Produce json
// @Success 200 {object} map[string][]string "Removed keys"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /icons/orphans [delete]
func (h *Handler) HandleRemoveOrphans(c *fiber.Ctx) error {
	l := logger.WithRayID(h.catalogue.logger, c)

	removed, err := h.catalogue.RemoveOrphans(c.Context())
	if err != nil {
		l.Error("Orphan removal failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if removed == nil {
		removed = []string{}
	}
	l.Info("Orphan icons removed", zap.Int("count", len(removed)))
	return c.JSON(fiber.Map{"removed": removed})
}

// HandleGet returns one icon as png.
// @Summary Get Icon
// @Tags icons
// @Produce png
// @Param name path string true "Character name"
// @Success 200 {file} file "Icon"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /icons/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	name := pathName(c)

	img, err := h.catalogue.Load(c.Context(), name)
	if errors.Is(err, ErrUnknownCharacter) || errors.Is(err, ErrIconNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.catalogue.logger, c).Error("Icon load failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	data, err := encodePNG(img.Image)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(data)
}

// HandleUpload stores a png or webp icon for a character.
// @Summary Upload Icon
// @Tags icons
// @Accept png
// @Produce json
// @Param name path string true "Character name"
// @Success 200 {object} IconStatus "Stored icon"
// @Failure 400 {object} map[string]string "Undecodable image"
// @Failure 404 {object} map[string]string "Unknown character"
// @Router /icons/{name} [put]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	name := pathName(c)

	img, err := h.catalogue.Upload(c.Context(), name, c.Body())
	if errors.Is(err, ErrUnknownCharacter) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.catalogue.logger, c).Warn("Icon upload rejected", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	b := img.Bounds()
	return c.JSON(IconStatus{Name: name, Loaded: true, Width: b.Dx(), Height: b.Dy()})
}

func pathName(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
