package reports

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elyebdri/maurifind/internal/config"
	"github.com/elyebdri/maurifind/internal/pkg/cloudinary"
	"github.com/elyebdri/maurifind/internal/pkg/i18n"
	"github.com/elyebdri/maurifind/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, bundle *i18n.Bundle) {
	repo := NewRepository(db)

	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
	if err != nil {
		// Reports without images still work; uploads will be rejected.
		log.WithError(err).Warn("cloudinary unavailable, report images disabled")
		cld = nil
	}

	handler := NewHandler(repo, cld, bundle)

	createLimiter := ratelimit.New(10, time.Minute)

	group := router.Group("/reports")
	{
		group.POST("", ratelimit.Middleware(createLimiter), handler.Create)
		group.GET("", handler.List)
		group.GET("/feed", handler.Feed)
		group.GET("/:id", handler.Get)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}
}
