package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/http/dto"
	"github.com/petrescue/backend/internal/services"
)

type AdminHandler struct {
	moderationService   *services.ModerationService
	notificationService *services.NotificationService
	contactService      *services.ContactService
	log                 *zap.Logger
}

func NewAdminHandler(
	moderationService *services.ModerationService,
	notificationService *services.NotificationService,
	contactService *services.ContactService,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		moderationService:   moderationService,
		notificationService: notificationService,
		contactService:      contactService,
		log:                 log,
	}
}

func (h *AdminHandler) ListRequests(c *fiber.Ctx) error {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}

	requests, err := h.moderationService.ListRequests(c.Context(), actorFrom(c), status, queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		return svcError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: requests})
}

func (h *AdminHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request id"})
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "status is required"})
	}

	updated, err := h.moderationService.UpdateRequestStatus(c.Context(), actorFrom(c), requestID, req.Status)
	if err != nil {
		return svcError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *AdminHandler) ListNotifications(c *fiber.Ctx) error {
	notifications, err := h.notificationService.List(c.Context(), queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		h.log.Error("list notifications failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: notifications})
}

func (h *AdminHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notificationService.UnreadCount(c.Context())
	if err != nil {
		h.log.Error("unread count failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.UnreadCountResponse{Unread: count})
}

func (h *AdminHandler) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid notification id"})
	}

	if err := h.notificationService.MarkRead(c.Context(), id); err != nil {
		return svcError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *AdminHandler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	marked, err := h.notificationService.MarkAllRead(c.Context())
	if err != nil {
		h.log.Error("mark all read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.MarkAllReadResponse{Marked: marked})
}

func (h *AdminHandler) ListContactSubmissions(c *fiber.Ctx) error {
	submissions, err := h.contactService.ListSubmissions(c.Context(), actorFrom(c), queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		return svcError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: submissions})
}
