package handlers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"resumescreener/internal/report"
)

type ReportHandler struct {
	store report.Store
}

func NewReportHandler(store report.Store) *ReportHandler {
	return &ReportHandler{
		store: store,
	}
}

// HandleDownload handles GET /reports/:filename, serving the merged report
// for download. Only the store's own report file is served.
func (h *ReportHandler) HandleDownload(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if filename != filepath.Base(h.store.Path()) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Report not found",
		})
	}

	path := h.store.Path()
	if _, err := os.Stat(path); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No report has been generated yet",
		})
	}

	return c.Download(path, filename)
}

// HandleRows handles GET /reports/:filename/rows, returning the persisted
// rows as JSON for display.
func (h *ReportHandler) HandleRows(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if filename != filepath.Base(h.store.Path()) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Report not found",
		})
	}

	rows, err := h.store.Rows()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"columns": report.Header,
		"rows":    rows,
	})
}
