package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"AssetVerse-backend/internal/platform/apierr"
	"AssetVerse-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

// RegisterPublicRoutes mounts sign-up, which runs before the client holds a token.
func RegisterPublicRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.POST("/users", h.CreateUser)
}

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/users/:email", h.GetUser)
	r.GET("/users/:email/role", h.GetRole)
	r.PUT("/users/profile/:email", h.UpdateProfile)
	r.PUT("/users/profile-image/:email", h.UpdateProfileImage)
}

// POST /users
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.ErrInvalid("a valid email is required"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GET /users/:email
func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /users/:email/role
func (h *Handler) GetRole(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, RoleResponse{Role: u.Role})
}

// PUT /users/profile/:email
func (h *Handler) UpdateProfile(c *gin.Context) {
	email := c.Param("email")
	if !auth.SameEmail(c, email) {
		apierr.Respond(c, apierr.ErrForbidden("forbidden access"))
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.ErrInvalid("invalid json"))
		return
	}
	res, err := h.svc.UpdateProfile(c.Request.Context(), email, req)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PUT /users/profile-image/:email
func (h *Handler) UpdateProfileImage(c *gin.Context) {
	email := c.Param("email")
	if !auth.SameEmail(c, email) {
		apierr.Respond(c, apierr.ErrForbidden("forbidden access"))
		return
	}
	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.ErrInvalid("profileImage is required"))
		return
	}
	res, err := h.svc.UpdateProfileImage(c.Request.Context(), email, req.ProfileImage)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
