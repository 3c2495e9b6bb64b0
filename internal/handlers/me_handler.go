package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-api/internal/domain/user"
	"github.com/BruksfildServices01/appointment-api/internal/dto"
	"github.com/BruksfildServices01/appointment-api/internal/httperr"
	"github.com/BruksfildServices01/appointment-api/internal/httpresp"
	"github.com/BruksfildServices01/appointment-api/internal/middleware"
)

type MeHandler struct {
	users user.Repository
	log   *zap.Logger
}

func NewMeHandler(users user.Repository, log *zap.Logger) *MeHandler {
	return &MeHandler{users: users, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.CallerID(c)
	if userID == "" {
		httperr.Unauthorized(c, "user_not_in_context", "User not found.")
		return
	}

	u, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// token outlived its user
			httperr.Unauthorized(c, "user_not_found", "User not found.")
			return
		}
		h.log.Error("loading user", zap.Error(err))
		httperr.Internal(c, "internal_error", "Internal server error.")
		return
	}

	httpresp.OK(c, gin.H{"user": dto.NewUserDTO(u)})
}
