package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumescreener/internal/models"
	"resumescreener/internal/report"
	"resumescreener/internal/repositories"
	"resumescreener/internal/screening"
	"resumescreener/internal/services"
)

type ScreenHandler struct {
	docRepo     repositories.DocumentRepository
	runRepo     repositories.RunRepository
	storage     services.StorageService
	engine      *screening.Engine
	store       report.Store
	maxFileSize int64
	log         *zap.Logger
}

func NewScreenHandler(
	docRepo repositories.DocumentRepository,
	runRepo repositories.RunRepository,
	storage services.StorageService,
	engine *screening.Engine,
	store report.Store,
	maxFileSize int64,
	log *zap.Logger,
) *ScreenHandler {
	return &ScreenHandler{
		docRepo:     docRepo,
		runRepo:     runRepo,
		storage:     storage,
		engine:      engine,
		store:       store,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// HandleScreen handles POST /screen: criteria form fields plus a batch of
// resume files. The whole batch is screened in one pass; per-file problems
// become warnings, never a failed request.
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	criteria := screening.ParseCriteria(
		c.FormValue("keywords"),
		c.FormValue("skills"),
		c.FormValue("min_years"),
		c.FormValue("education"),
	)

	files := form.File["resumes"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resumes uploaded. Please upload 'resumes' as PDF or DOCX files.",
		})
	}

	runID := uuid.New()
	var warnings []string
	var docs []screening.Document

	for _, file := range files {
		if !services.SupportedFile(file.Filename) {
			warnings = append(warnings, fmt.Sprintf("%s: unsupported format, only PDF and DOCX are accepted", file.Filename))
			continue
		}

		if file.Size > h.maxFileSize {
			warnings = append(warnings, fmt.Sprintf("%s: file too large, max size is %d bytes", file.Filename, h.maxFileSize))
			continue
		}

		data, err := readUpload(file)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: failed to read upload: %v", file.Filename, err))
			continue
		}

		// Keep a copy on disk for auditing. Storage problems don't block
		// scoring, the batch proceeds from the in-memory bytes.
		if filename, filePath, err := h.storage.SaveUpload(file); err != nil {
			h.log.Warn("failed to store upload",
				zap.String("filename", file.Filename),
				zap.Error(err))
		} else {
			doc := &models.Document{
				ID:               uuid.New(),
				RunID:            runID,
				Filename:         filename,
				OriginalFileName: file.Filename,
				FilePath:         filePath,
				SizeBytes:        file.Size,
				CreatedAt:        time.Now(),
				UpdatedAt:        time.Now(),
			}
			if err := h.docRepo.Create(doc); err != nil {
				h.log.Warn("failed to record document",
					zap.String("filename", file.Filename),
					zap.Error(err))
			}
		}

		docs = append(docs, screening.Document{ID: file.Filename, Data: data})
	}

	if len(docs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "No valid resumes in batch",
			"warnings": warnings,
		})
	}

	results, err := h.engine.Screen(c.Context(), criteria, docs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("screening aborted: %v", err),
		})
	}

	summary, persistErr := h.store.Append(results)
	if summary != nil && summary.Warning != nil {
		warnings = append(warnings, summary.Warning.Error())
		h.log.Warn("existing report unreadable, starting fresh history",
			zap.Error(summary.Warning))
	}

	run := &models.ScreeningRun{
		ID:             runID,
		Keywords:       c.FormValue("keywords"),
		Skills:         c.FormValue("skills"),
		MinYears:       criteria.MinYears,
		Education:      c.FormValue("education"),
		CandidateCount: len(results),
		ReportPath:     h.store.Path(),
		Status:         models.StatusCompleted,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if len(results) > 0 {
		top := results[0].Score
		run.TopScore = &top
	}
	if persistErr != nil {
		run.Status = models.StatusFailed
		run.ErrorMessage = persistErr.Error()
	}

	if err := h.runRepo.Create(run); err != nil {
		h.log.Warn("failed to record screening run", zap.Error(err))
	}

	response := models.ScreenResponse{
		RunID:     runID.String(),
		Results:   toCandidateResults(results),
		ReportURL: reportURL(h.store.Path()),
		Warnings:  warnings,
	}

	if persistErr != nil {
		// The ranked batch was computed but the report was not saved. The
		// caller has to know; the results still ride along.
		h.log.Error("report persistence failed", zap.Error(persistErr))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   fmt.Sprintf("ranked results computed but report not saved: %v", persistErr),
			"run_id":  response.RunID,
			"results": response.Results,
		})
	}

	return c.JSON(response)
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}

func toCandidateResults(results []screening.ScoreResult) []models.CandidateResult {
	out := make([]models.CandidateResult, 0, len(results))
	for _, r := range results {
		out = append(out, models.CandidateResult{
			Filename:       r.CandidateID,
			KeywordsFound:  r.KeywordsFound,
			SkillsFound:    r.SkillsFound,
			Years:          r.Years,
			EducationFound: r.EducationFound,
			Score:          r.Score,
			ExtractionErr:  r.ExtractionErr,
		})
	}
	return out
}

func reportURL(path string) string {
	return "/api/v1/reports/" + filepath.Base(path)
}
