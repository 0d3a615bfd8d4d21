package assets

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"AssetVerse-backend/internal/platform/apierr"
	"AssetVerse-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/assets", h.ListAssets)
	r.GET("/assets/:id", h.GetAsset)
	r.POST("/assets", h.CreateAsset)
	r.PUT("/assets/:id", h.UpdateAsset)
	r.DELETE("/assets/:id", h.DeleteAsset)
}

// GET /assets?email=
func (h *Handler) ListAssets(c *gin.Context) {
	email, err := auth.ScopeQueryEmail(c)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	items, err := h.svc.List(c.Request.Context(), email)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /assets/:id
func (h *Handler) GetAsset(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /assets
func (h *Handler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.ErrInvalid("productName, productType and productQuantity are required"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), auth.Email(c), req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.Header("Location", "/assets/"+res.InsertedID)
	c.JSON(http.StatusCreated, res)
}

// PUT /assets/:id
func (h *Handler) UpdateAsset(c *gin.Context) {
	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.ErrInvalid("invalid json"))
		return
	}
	res, err := h.svc.Update(c.Request.Context(), auth.Email(c), c.Param("id"), req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /assets/:id
func (h *Handler) DeleteAsset(c *gin.Context) {
	res, err := h.svc.Delete(c.Request.Context(), auth.Email(c), c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
