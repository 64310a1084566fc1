package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/http/dto"
	"github.com/petrescue/backend/internal/middleware"
	"github.com/petrescue/backend/internal/models"
	"github.com/petrescue/backend/internal/services"
)

type ContactHandler struct {
	contactService *services.ContactService
	log            *zap.Logger
}

func NewContactHandler(contactService *services.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{contactService: contactService, log: log}
}

// Submit accepts contact and issue submissions. Works both authenticated and
// anonymous; a logged-in submitter is linked to the record.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	submissionType := req.SubmissionType
	if submissionType == "" {
		submissionType = models.SubmissionGeneral
	}

	var petID *uuid.UUID
	if req.PetID != nil && *req.PetID != "" {
		id, err := uuid.Parse(*req.PetID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid pet_id"})
		}
		petID = &id
	}

	var actor *models.User
	if middleware.GetUserID(c) != uuid.Nil {
		actor = actorFrom(c)
	}

	sub, err := h.contactService.Submit(c.Context(), actor, services.ContactInput{
		Name:           req.Name,
		Email:          req.Email,
		Subject:        req.Subject,
		Message:        req.Message,
		SubmissionType: submissionType,
		PetID:          petID,
	})
	if err != nil {
		return svcError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: sub})
}
