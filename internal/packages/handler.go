package packages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"AssetVerse-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/packages", h.ListPackages)
}

// GET /packages
func (h *Handler) ListPackages(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
