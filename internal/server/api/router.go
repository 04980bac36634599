package api

import (
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/gin-gonic/gin"
)

// NewRouter constructs the gin engine with routes wired. Global gin settings
// are left to ConfigureGin.
func NewRouter(us UserService, l logging.Logger) *gin.Engine {
	h := NewHandler(us, l)

	r := gin.New()
	r.Use(RequestLogger(h.logger), Recovery(h.logger))

	r.GET("/", h.Welcome)

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	r.GET("/users/:id", h.RequireToken(), h.Profile)

	return r
}
