// Package api is the HTTP boundary: a gin router that decodes requests into
// service inputs and maps service errors onto status codes.
package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/gin-gonic/gin"
)

// UserService is the part of services.UserService the handlers need.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, in services.LoginInput) (string, error)
	Authenticate(token string) (string, error)
	Profile(ctx context.Context, id string) (*models.Profile, error)
}

type Handler struct {
	users  UserService
	logger logging.Logger
}

func NewHandler(us UserService, l logging.Logger) *Handler {
	return &Handler{users: us, logger: l.With("module", "http_api")}
}

type registerRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmpassword" form:"confirmpassword"`
	Level           Level  `json:"level" form:"level"`
}

type loginRequest struct {
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
}

func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "welcome to gophauth", "status": "ok"})
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}

	u, err := h.users.Register(c.Request.Context(), services.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Level:           string(req.Level),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "user registered", "request_id", c.GetString(RequestIDKey), "user_id", u.ID)
	c.JSON(http.StatusCreated, gin.H{"msg": "user created successfully"})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}

	token, err := h.users.Login(c.Request.Context(), services.LoginInput{Name: req.Name, Password: req.Password})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "authenticated", "token": token})
}

// Profile serves the public fields of the user named in the path. The token's
// user id is not compared with it.
func (h *Handler) Profile(c *gin.Context) {
	p, err := h.users.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
