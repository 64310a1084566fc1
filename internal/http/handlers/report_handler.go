package handlers

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/config"
	"github.com/petrescue/backend/internal/http/dto"
	"github.com/petrescue/backend/internal/services"
)

const reportDateLayout = "2006-01-02"

type ReportHandler struct {
	reportService *services.ReportService
	cfg           *config.Config
	log           *zap.Logger
}

func NewReportHandler(reportService *services.ReportService, cfg *config.Config, log *zap.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportService, cfg: cfg, log: log}
}

// saveImage validates and stores an uploaded pet photo under a generated
// name, returning the public ref.
func (h *ReportHandler) saveImage(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	head := make([]byte, 512)
	n, _ := f.Read(head)
	f.Close()

	if err := services.ValidateImage(fh.Filename, fh.Size, head[:n], h.cfg.MaxImageBytes); err != nil {
		return "", err
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
	if err := c.SaveFile(fh, filepath.Join(h.cfg.UploadDir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// optionalImage pulls the "image" multipart part if the request carries one.
func (h *ReportHandler) optionalImage(c *fiber.Ctx) (*string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	ref, err := h.saveImage(c, fh)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (h *ReportHandler) SubmitLost(c *fiber.Ctx) error {
	var req dto.LostReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	dateLost, err := time.Parse(reportDateLayout, strings.TrimSpace(req.DateLost))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "date_lost must be YYYY-MM-DD"})
	}

	imageRef, err := h.optionalImage(c)
	if err != nil {
		return svcError(c, err)
	}

	result, err := h.reportService.SubmitLost(c.Context(), actorFrom(c), services.LostReportInput{
		PetName:          req.PetName,
		PetType:          req.PetType,
		Breed:            req.Breed,
		Color:            req.Color,
		LastSeenLocation: req.LastSeenLocation,
		Description:      req.Description,
		ImageRef:         imageRef,
		DateLost:         dateLost,
		ContactPhone:     req.ContactPhone,
		Message:          req.Message,
	})
	if err != nil {
		return svcError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: result})
}

func (h *ReportHandler) SubmitFound(c *fiber.Ctx) error {
	var req dto.FoundReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	imageRef, err := h.optionalImage(c)
	if err != nil {
		return svcError(c, err)
	}

	result, err := h.reportService.SubmitFound(c.Context(), actorFrom(c), services.FoundReportInput{
		PetType:       req.PetType,
		Breed:         req.Breed,
		Color:         req.Color,
		FoundLocation: req.FoundLocation,
		Description:   req.Description,
		ImageRef:      imageRef,
		ContactPhone:  req.ContactPhone,
		Message:       req.Message,
	})
	if err != nil {
		return svcError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: result})
}

// UploadImage stores a photo ahead of an edit, returning its ref.
func (h *ReportHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "image file is required"})
	}
	ref, err := h.saveImage(c, fh)
	if err != nil {
		return svcError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ImageUploadResponse{ImageRef: ref})
}

func (h *ReportHandler) MyReports(c *fiber.Ctx) error {
	reports, err := h.reportService.ListMyReports(c.Context(), actorFrom(c), queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		h.log.Error("list my reports failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: reports})
}

func (h *ReportHandler) EditReport(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request id"})
	}

	var req dto.EditReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	imageRef, err := h.optionalImage(c)
	if err != nil {
		return svcError(c, err)
	}

	pet, err := h.reportService.EditReport(c.Context(), actorFrom(c), requestID, services.EditReportInput{
		PetName:      req.PetName,
		Breed:        req.Breed,
		Color:        req.Color,
		Location:     req.Location,
		Description:  req.Description,
		ImageRef:     imageRef,
		ContactPhone: req.ContactPhone,
		Message:      req.Message,
	})
	if err != nil {
		return svcError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: pet})
}

func (h *ReportHandler) DeleteReport(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request id"})
	}

	if err := h.reportService.DeleteReport(c.Context(), actorFrom(c), requestID); err != nil {
		return svcError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *ReportHandler) GetHistory(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request id"})
	}

	entries, err := h.reportService.GetHistory(c.Context(), actorFrom(c), requestID, queryInt(c, "limit", 50))
	if err != nil {
		return svcError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}
