package requests

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"AssetVerse-backend/internal/asset_mgmt/lifecycle"
	"AssetVerse-backend/internal/platform/apierr"
	"AssetVerse-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/asset-requests", h.ListRequests)
	r.GET("/asset-requests/:id", h.GetRequest)
	r.POST("/asset-requests", h.SubmitRequest)

	// HR processing
	r.PATCH("/asset-requests/approve/:id", h.ApproveRequest)
	r.PATCH("/asset-requests/reject/:id", h.RejectRequest)
}

// GET /asset-requests?email=
// Without email the caller's own requests (as requester or HR) are listed.
func (h *Handler) ListRequests(c *gin.Context) {
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

// GET /asset-requests/:id
func (h *Handler) GetRequest(c *gin.Context) {
	r, err := h.svc.Get(c.Request.Context(), auth.Email(c), c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// POST /asset-requests
func (h *Handler) SubmitRequest(c *gin.Context) {
	var req lifecycle.SubmitInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.ErrInvalid("assetId and requesterEmail are required"))
		return
	}
	r, err := h.svc.Submit(c.Request.Context(), auth.Email(c), req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.Header("Location", "/asset-requests/"+r.ID)
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": r.ID, "request": r})
}

// PATCH /asset-requests/approve/:id
func (h *Handler) ApproveRequest(c *gin.Context) {
	res, err := h.svc.Approve(c.Request.Context(), auth.Email(c), c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PATCH /asset-requests/reject/:id
func (h *Handler) RejectRequest(c *gin.Context) {
	res, err := h.svc.Reject(c.Request.Context(), auth.Email(c), c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
