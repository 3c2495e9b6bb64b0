package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/appointment-api/internal/auth"
	"github.com/BruksfildServices01/appointment-api/internal/domain/user"
	"github.com/BruksfildServices01/appointment-api/internal/dto"
	"github.com/BruksfildServices01/appointment-api/internal/httperr"
	"github.com/BruksfildServices01/appointment-api/internal/httpresp"
	"github.com/BruksfildServices01/appointment-api/internal/models"
	"github.com/BruksfildServices01/appointment-api/internal/validators"
)

type AuthHandler struct {
	users  user.Repository
	tokens *auth.Tokens
	log    *zap.Logger

	// domainCheck, when set, must accept the email domain on register.
	domainCheck func(email string) bool
}

func NewAuthHandler(
	users user.Repository,
	tokens *auth.Tokens,
	log *zap.Logger,
	domainCheck func(email string) bool,
) *AuthHandler {
	return &AuthHandler{
		users:       users,
		tokens:      tokens,
		log:         log,
		domainCheck: domainCheck,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email, ok := validators.NormalizeEmail(req.Email)
	if !ok {
		httperr.BadRequest(c, "invalid_email", "The email address is not valid.")
		return
	}

	if h.domainCheck != nil && !h.domainCheck(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("hashing password", zap.Error(err))
		httperr.Internal(c, "failed_to_hash_password", "Internal server error.")
		return
	}

	u := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.users.Create(c.Request.Context(), &u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			httperr.BadRequest(c, "email_already_registered", "Email already registered.")
			return
		}
		h.log.Error("creating user", zap.Error(err))
		httperr.Internal(c, "failed_to_create_user", "Internal server error.")
		return
	}

	h.respondWithToken(c, http.StatusCreated, &u)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		h.log.Error("loading user", zap.Error(err))
		httperr.Internal(c, "internal_error", "Internal server error.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	h.respondWithToken(c, http.StatusOK, u)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, u *models.User) {
	token, err := h.tokens.Issue(u.ID)
	if err != nil {
		h.log.Error("issuing token", zap.Error(err))
		httperr.Internal(c, "failed_to_generate_token", "Internal server error.")
		return
	}

	resp := dto.AuthResponseDTO{
		User:  dto.NewUserDTO(u),
		Token: token,
	}
	if status == http.StatusCreated {
		httpresp.Created(c, resp)
		return
	}
	httpresp.OK(c, resp)
}
