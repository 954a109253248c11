package handler

import (
	"io"
	"strconv"

	"snapkitty-api/internal/delivery/http/dto"
	"snapkitty-api/internal/domain/apperr"
	"snapkitty-api/internal/usecase/upload"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploadUsecase *upload.UploadUsecase
}

func NewUploadHandler(uploadUsecase *upload.UploadUsecase) *UploadHandler {
	return &UploadHandler{uploadUsecase: uploadUsecase}
}

// Upload accepts a multipart image, runs the ingest pipeline, and
// acknowledges with the record id and stored file name. Enrichment
// failures do not fail the request.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No file uploaded"})
	}

	fileData, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer fileData.Close()

	buf, err := io.ReadAll(fileData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read file"})
	}

	rec, err := h.uploadUsecase.Ingest(
		c.Context(),
		file.Filename,
		file.Header.Get("Content-Type"),
		buf,
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		Message:  "Upload successful",
		ID:       rec.ID,
		Filename: rec.StoredFileName,
	})
}

// List returns recent records, newest first.
func (h *UploadHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	recs, err := h.uploadUsecase.ListRecords(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}

	recordInfos := make([]dto.RecordInfo, 0, len(recs))
	for _, rec := range recs {
		recordInfos = append(recordInfos, dto.RecordInfo{
			ID:            rec.ID,
			Filename:      rec.StoredFileName,
			UploadTime:    rec.UploadTime,
			ExtractedText: rec.ExtractedText,
			Keywords:      rec.Keywords,
			Solution:      rec.Solution,
		})
	}

	return c.Status(fiber.StatusOK).JSON(recordInfos)
}

// Solve generates and stores a solution for one record.
func (h *UploadHandler) Solve(c *fiber.Ctx) error {
	recordID := c.Params("id")

	solution, err := h.uploadUsecase.Solve(c.Context(), recordID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.SolveResponse{Solution: solution})
}

// Delete removes one record.
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	recordID := c.Params("id")

	if err := h.uploadUsecase.DeleteRecord(c.Context(), recordID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Record deleted successfully"})
}

// ClearAll removes every record.
func (h *UploadHandler) ClearAll(c *fiber.Ctx) error {
	count, err := h.uploadUsecase.ClearRecords(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ClearRecordsResponse{
		Count:   count,
		Message: "All records deleted",
	})
}

// respondError maps the error taxonomy onto HTTP statuses: bad input 400,
// missing record or missing text 404, a storage layer that cannot answer
// 503, a failed solution service 500.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = fiber.StatusBadRequest
	case apperr.KindNotFound, apperr.KindNoContent:
		status = fiber.StatusNotFound
	case apperr.KindStorage:
		status = fiber.StatusServiceUnavailable
	case apperr.KindService:
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: apperr.Message(err)})
}
