package safety

import (
	"github.com/gin-gonic/gin"

	"github.com/elyebdri/maurifind/internal/middleware"
	"github.com/elyebdri/maurifind/internal/pkg/i18n"
	"github.com/elyebdri/maurifind/internal/pkg/response"
)

type Handler struct {
	bundle *i18n.Bundle
}

func NewHandler(bundle *i18n.Bundle) *Handler {
	return &Handler{bundle: bundle}
}

// Tips godoc
// @Summary Safety tips
// @Description Get safety tips in the request language (fr or ar)
// @Tags safety
// @Produce json
// @Param lang query string false "Language" Enums(fr, ar)
// @Success 200 {object} response.SuccessResponse{data=[]Tip}
// @Router /safety-tips [get]
func (h *Handler) Tips(c *gin.Context) {
	lang := c.GetString(middleware.LangKey)

	tips := make([]Tip, 0, len(tipIDs))
	for _, id := range tipIDs {
		tips = append(tips, Tip{ID: id, Text: h.bundle.T(lang, id)})
	}

	response.Success(c, tips)
}
