package safety

import (
	"github.com/gin-gonic/gin"

	"github.com/elyebdri/maurifind/internal/pkg/i18n"
)

func RegisterRoutes(router *gin.RouterGroup, bundle *i18n.Bundle) {
	handler := NewHandler(bundle)

	router.GET("/safety-tips", handler.Tips)
}
