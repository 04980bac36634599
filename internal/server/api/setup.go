package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var configureOnce sync.Once

// ConfigureGin applies the process-wide gin settings the API relies on:
// release mode and rejection of unknown JSON fields. Call it once at
// startup, before serving.
func ConfigureGin() {
	configureOnce.Do(func() {
		gin.SetMode(gin.ReleaseMode)
		binding.EnableDecoderDisallowUnknownFields = true
	})
}
