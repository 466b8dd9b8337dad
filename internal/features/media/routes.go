package media

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/elyebdri/maurifind/internal/config"
	"github.com/elyebdri/maurifind/internal/pkg/cloudinary"
	"github.com/elyebdri/maurifind/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
	if err != nil {
		log.WithError(err).Warn("cloudinary unavailable, media uploads disabled")
		cld = nil
	}

	handler := NewHandler(cld)

	uploadLimiter := ratelimit.New(20, time.Minute)

	media := router.Group("/media")
	{
		media.POST("/upload", ratelimit.Middleware(uploadLimiter), handler.Upload)
	}
}
