package employees

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"AssetVerse-backend/internal/platform/apierr"
	"AssetVerse-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/employees", h.ListEmployees)
	r.PATCH("/employees/remove/:id", h.RemoveEmployee)
}

// GET /employees?email=
// Without email the caller is taken as the HR owner.
func (h *Handler) ListEmployees(c *gin.Context) {
	email, err := auth.ScopeQueryEmail(c)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	if email == "" {
		email = auth.Email(c)
	}
	items, err := h.svc.List(c.Request.Context(), email)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PATCH /employees/remove/:id
func (h *Handler) RemoveEmployee(c *gin.Context) {
	res, err := h.svc.Remove(c.Request.Context(), auth.Email(c), c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
