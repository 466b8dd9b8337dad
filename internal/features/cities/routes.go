package cities

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	handler := NewHandler()

	router.GET("/cities", handler.List)
}
