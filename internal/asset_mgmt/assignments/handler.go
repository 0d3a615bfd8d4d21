package assignments

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"AssetVerse-backend/internal/platform/apierr"
	"AssetVerse-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/my-assets", h.ListMyAssets)
	r.PATCH("/assets/return/:id", h.ReturnAsset)
}

// GET /my-assets?email=
func (h *Handler) ListMyAssets(c *gin.Context) {
	if c.Query("email") == "" {
		apierr.Respond(c, apierr.ErrInvalid("email is required"))
		return
	}
	email, err := auth.ScopeQueryEmail(c)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	items, err := h.svc.ListMine(c.Request.Context(), email)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PATCH /assets/return/:id
func (h *Handler) ReturnAsset(c *gin.Context) {
	res, err := h.svc.Return(c.Request.Context(), auth.Email(c), c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
