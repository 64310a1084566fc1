package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/http/dto"
	"github.com/petrescue/backend/internal/services"
)

type SearchHandler struct {
	searchService *services.SearchService
	log           *zap.Logger
}

func NewSearchHandler(searchService *services.SearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{searchService: searchService, log: log}
}

func (h *SearchHandler) SearchFound(c *fiber.Ctx) error {
	pets, err := h.searchService.SearchFoundPets(c.Context(), services.SearchInput{
		PetType:   c.Query("pet_type"),
		Breed:     c.Query("breed"),
		Color:     c.Query("color"),
		Location:  c.Query("location"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Limit:     queryInt(c, "limit", 20),
		Offset:    queryInt(c, "offset", 0),
	})
	if err != nil {
		h.log.Error("search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: pets})
}

func (h *SearchHandler) ListAvailable(c *fiber.Ctx) error {
	pets, err := h.searchService.ListAvailablePets(c.Context(), queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		h.log.Error("list available failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: pets})
}
