package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumescreener/internal/models"
	"resumescreener/internal/repositories"
)

type RunHandler struct {
	runRepo repositories.RunRepository
}

func NewRunHandler(runRepo repositories.RunRepository) *RunHandler {
	return &RunHandler{
		runRepo: runRepo,
	}
}

// HandleGetRun handles GET /runs/:id.
func (h *RunHandler) HandleGetRun(c *fiber.Ctx) error {
	idParam := c.Params("id")
	runID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid run ID format",
		})
	}

	run, err := h.runRepo.FindByID(runID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Screening run not found",
		})
	}

	return c.JSON(toRunResponse(run))
}

// HandleListRuns handles GET /runs.
func (h *RunHandler) HandleListRuns(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	runs, err := h.runRepo.FindRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list screening runs",
		})
	}

	responses := make([]models.RunResponse, 0, len(runs))
	for i := range runs {
		responses = append(responses, toRunResponse(&runs[i]))
	}

	return c.JSON(fiber.Map{
		"runs": responses,
	})
}

func toRunResponse(run *models.ScreeningRun) models.RunResponse {
	resp := models.RunResponse{
		ID:             run.ID.String(),
		Status:         string(run.Status),
		Keywords:       run.Keywords,
		Skills:         run.Skills,
		MinYears:       run.MinYears,
		Education:      run.Education,
		CandidateCount: run.CandidateCount,
		TopScore:       run.TopScore,
		ErrorMessage:   run.ErrorMessage,
	}
	if run.Status == models.StatusCompleted {
		resp.ReportURL = reportURL(run.ReportPath)
	}
	return resp
}
