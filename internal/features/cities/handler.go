package cities

import (
	"github.com/gin-gonic/gin"

	"github.com/elyebdri/maurifind/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// List godoc
// @Summary List cities
// @Description Get the fixed list of Mauritanian cities with bilingual labels
// @Tags cities
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]City}
// @Router /cities [get]
func (h *Handler) List(c *gin.Context) {
	response.Success(c, All)
}
