package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Lumen-Media-LLC/dayline/internal/db"
	"github.com/Lumen-Media-LLC/dayline/internal/http/api"
	authapi "github.com/Lumen-Media-LLC/dayline/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/Lumen-Media-LLC/dayline/internal/http/api/admin/control/endpoints"
	playerapi "github.com/Lumen-Media-LLC/dayline/internal/http/api/player/endpoints"
	"github.com/Lumen-Media-LLC/dayline/internal/sequences"
	"github.com/Lumen-Media-LLC/dayline/internal/timeline"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	seqStore sequences.Store,
	publisher timeline.Publisher,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		// control modules
		adminapi.CatalogModule(store),
		adminapi.TimelineModule(store, seqStore, publisher),
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/player",
	},
		playerapi.FeedModule(seqStore),
	)
}
