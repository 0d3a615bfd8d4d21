package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"AssetVerse-backend/internal/platform/apierr"
)

type TokenHandler struct{ svc *Service }

// RegisterDevRoutes exposes token issuance. Only mounted in dev mode.
func RegisterDevRoutes(r gin.IRoutes, svc *Service) {
	h := &TokenHandler{svc: svc}
	r.POST("/auth/token", h.IssueToken)
}

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *TokenHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.ErrInvalid("email is required"))
		return
	}

	token, err := h.svc.Issue(req.Email)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
