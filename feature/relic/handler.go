package relic

import (
	"bytes"
	"net/url"

	"relic-manager/core/logger"
	"relic-manager/core/reconcile"
	"relic-manager/feature/relic/parse"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ScanRequest is the body of POST /relics/scan and POST /relics/export.
type ScanRequest struct {
	Scans  []RawScan `json:"scans"`
	Record bool      `json:"record"`
	Prune  bool      `json:"prune"`
	Apply  bool      `json:"apply"`
	DryRun bool      `json:"dry_run"`
}

func (r ScanRequest) options() reconcile.ReconcileOptions {
	return reconcile.ReconcileOptions{
		DoRecord:  r.Record,
		DoPrune:   r.Prune,
		Confirmed: r.Apply,
		DryRun:    r.DryRun,
	}
}

// ScanResponse is the result of POST /relics/scan.
type ScanResponse struct {
	*ScanReport
	Executed int `json:"executed"`
}

// ParseStatRequest is the body of POST /relics/parse-stat.
type ParseStatRequest struct {
	Line string `json:"line"`
}

// Handler handles HTTP requests for relics.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the relic routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/relics")
	group.Post("/scan", h.HandleScan)
	group.Post("/export", h.HandleExport)
	group.Post("/parse-stat", h.HandleParseStat)
	group.Get("/classify/:name", h.HandleClassify)
}

// HandleScan assembles and reconciles a batch of OCR scans.
// @Summary Scan Relics
// @Description Assemble raw OCR scans into relics, merge stored locks and plan lock store changes. The plan is applied only when apply is true and dry_run is false.
// @Tags relics
// @Accept json
// @Produce json
// @Param body body ScanRequest true "Raw scans"
// @Success 200 {object} ScanResponse "Scan report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /relics/scan [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	opts := req.options()
	report, err := h.service.Scan(c.Context(), req.Scans, opts)
	if err != nil {
		l.Error("Relic scan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	executed, err := h.service.Apply(c.Context(), report, opts)
	if err != nil {
		l.Error("Applying scan plan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(ScanResponse{ScanReport: report, Executed: executed})
}

// HandleExport returns the assembled relics of a scan batch as an xlsx workbook.
// @Summary Export Relics
// @Tags relics
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param body body ScanRequest true "Raw scans"
// @Success 200 {file} file "Inventory workbook"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /relics/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	report, err := h.service.Scan(c.Context(), req.Scans, reconcile.ReconcileOptions{})
	if err != nil {
		l.Error("Relic scan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, report.Relics); err != nil {
		l.Error("Relic export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relics.xlsx"`)
	return c.Send(buf.Bytes())
}

// HandleParseStat parses a single stat line.
// @Summary Parse Stat
// @Tags relics
// @Accept json
// @Produce json
// @Param body body ParseStatRequest true "Stat line"
// @Success 200 {object} models.Stat "Parsed stat"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Unrecognized line"
// @Router /relics/parse-stat [post]
func (h *Handler) HandleParseStat(c *fiber.Ctx) error {
	var req ParseStatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	stat, ok := parse.ParseStat(req.Line)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "unrecognized stat line",
			"line":  req.Line,
		})
	}
	return c.JSON(stat)
}

// HandleClassify resolves a piece name to its set and slot.
// @Summary Classify Piece
// @Tags relics
// @Produce json
// @Param name path string true "Piece display name"
// @Success 200 {object} classify.Classification "Classification"
// @Failure 404 {object} map[string]string "Unknown piece"
// @Router /relics/classify/{name} [get]
func (h *Handler) HandleClassify(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		name = c.Params("name")
	}

	class, ok := h.service.assembler.classifier.Resolve(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown relic piece",
			"name":  name,
		})
	}
	return c.JSON(class)
}
