package stations

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	handler := NewHandler()

	router.GET("/stations", handler.List)
}
