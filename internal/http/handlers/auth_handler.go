package handlers

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/auth"
	"github.com/petrescue/backend/internal/config"
	"github.com/petrescue/backend/internal/http/dto"
	"github.com/petrescue/backend/internal/middleware"
	"github.com/petrescue/backend/internal/models"
	"github.com/petrescue/backend/internal/repositories"
)

type AuthHandler struct {
	pool     *pgxpool.Pool
	userRepo *repositories.UserRepo
	cfg      *config.Config
	log      *zap.Logger
}

func NewAuthHandler(pool *pgxpool.Pool, userRepo *repositories.UserRepo, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{pool: pool, userRepo: userRepo, cfg: cfg, log: log}
}

// Register creates the credentials row and its profile in one transaction.
// Emails listed in ADMIN_EMAILS come out with the admin capability.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if len(username) < 3 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "username must be at least 3 characters"})
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid email address"})
	}

	if taken, err := h.userRepo.UsernameExists(c.Context(), username); err != nil {
		h.log.Error("username lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	} else if taken {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "username already taken"})
	}
	if taken, err := h.userRepo.EmailExists(c.Context(), email); err != nil {
		h.log.Error("email lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	} else if taken {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "email already registered"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Phone:        req.Phone,
		IsAdmin:      h.cfg.IsBootstrapAdmin(email),
	}

	tx, err := h.pool.Begin(c.Context())
	if err != nil {
		h.log.Error("begin tx failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	defer tx.Rollback(c.Context())

	if err := h.userRepo.WithTx(tx).Create(c.Context(), user); err != nil {
		h.log.Error("create user failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	profile := &models.Profile{
		UserID:   user.ID,
		FullName: req.FullName,
		Address:  req.Address,
		Location: req.Location,
	}
	if err := h.userRepo.WithTx(tx).CreateProfile(c.Context(), profile); err != nil {
		h.log.Error("create profile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	if err := tx.Commit(c.Context()); err != nil {
		h.log.Error("commit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Username, user.IsAdmin, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	user, err := h.userRepo.GetByUsername(c.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Username, user.IsAdmin, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	user, err := h.userRepo.GetByID(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
	}

	resp := dto.MeResponse{User: user}
	if profile, err := h.userRepo.GetProfile(c.Context(), user.ID); err == nil {
		resp.Profile = profile
	} else if !errors.Is(err, pgx.ErrNoRows) {
		h.log.Error("profile lookup failed", zap.Error(err))
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: resp})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.GetUserID(c)

	if req.Phone != nil {
		if err := h.userRepo.UpdatePhone(c.Context(), userID, req.Phone); err != nil {
			h.log.Error("update phone failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
		}
	}

	profile, err := h.userRepo.GetProfile(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "profile not found"})
	}
	if req.FullName != nil {
		profile.FullName = req.FullName
	}
	if req.Address != nil {
		profile.Address = req.Address
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if err := h.userRepo.UpdateProfile(c.Context(), profile); err != nil {
		h.log.Error("update profile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}
