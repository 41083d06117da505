package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/miqat-dev/miqat/internal/http/api"
	"github.com/miqat-dev/miqat/internal/http/api/endpoints"
	"github.com/miqat-dev/miqat/internal/store"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, st store.Store, refresher endpoints.Refresher) {
	// CORS: the settings UI may be served from anywhere
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		endpoints.PrayerModule(st, refresher),
	)
}
