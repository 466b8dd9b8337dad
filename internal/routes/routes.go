package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elyebdri/maurifind/internal/config"
	"github.com/elyebdri/maurifind/internal/features/cities"
	"github.com/elyebdri/maurifind/internal/features/media"
	"github.com/elyebdri/maurifind/internal/features/reports"
	"github.com/elyebdri/maurifind/internal/features/safety"
	"github.com/elyebdri/maurifind/internal/features/stations"
	"github.com/elyebdri/maurifind/internal/middleware"
	"github.com/elyebdri/maurifind/internal/pkg/i18n"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, bundle *i18n.Bundle) {
	// API v1 group
	api := router.Group("/api/v1")
	api.Use(middleware.Lang(cfg.DefaultLang))

	reports.RegisterRoutes(api, db, cfg, bundle)
	stations.RegisterRoutes(api)
	cities.RegisterRoutes(api)
	safety.RegisterRoutes(api, bundle)
	media.RegisterRoutes(api, cfg)

	// Everything else belongs to the SPA bundle
	router.NoRoute(middleware.SPAFallback(cfg.WebDir))
}
